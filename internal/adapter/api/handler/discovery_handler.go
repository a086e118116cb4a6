package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
	"hanaplokal/pkg/utils"
)

type DiscoveryHandler struct {
	discoveryUseCase *usecase.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *usecase.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// Discover serves the home feed: nearby active stores, optionally filtered by
// category, profile type, radius and a free-text query.
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	var lat, lng float64
	var err error

	if latStr := c.QueryParam("lat"); latStr != "" {
		lat, err = strconv.ParseFloat(latStr, 64)
		if err != nil || lat < -90 || lat > 90 {
			return response.Error(c, errors.BadRequest("Invalid latitude", nil))
		}
	}
	if lngStr := c.QueryParam("lng"); lngStr != "" {
		lng, err = strconv.ParseFloat(lngStr, 64)
		if err != nil || lng < -180 || lng > 180 {
			return response.Error(c, errors.BadRequest("Invalid longitude", nil))
		}
	}

	var radius float64
	if radiusStr := c.QueryParam("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid radius", nil))
		}
	}

	pagination := utils.GetPaginationParams(c)

	stores, total, err := h.discoveryUseCase.Discover(c.Request().Context(), usecase.DiscoverInput{
		Lat:         lat,
		Lng:         lng,
		RadiusKm:    radius,
		Category:    c.QueryParam("category"),
		ProfileType: c.QueryParam("profile_type"),
		Query:       c.QueryParam("q"),
		Limit:       pagination.PageSize,
		Offset:      pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stores, total, pagination.Page, pagination.PageSize)
}
