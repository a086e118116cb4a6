package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/geo"
	"hanaplokal/internal/domain/taxonomy"
	"hanaplokal/pkg/i18n"
	"hanaplokal/pkg/response"
)

// MetaHandler serves the static taxonomy and configuration tables the mobile
// clients render their pickers from. No usecase behind it, the tables are
// compiled in.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) ProfileTypes(c echo.Context) error {
	return response.Success(c, taxonomy.ProfileTypes())
}

func (h *MetaHandler) Categories(c echo.Context) error {
	if profileType := c.QueryParam("profile_type"); profileType != "" {
		return response.Success(c, taxonomy.CategoriesForProfileType(profileType))
	}
	return response.Success(c, taxonomy.Categories())
}

func (h *MetaHandler) ListingKinds(c echo.Context) error {
	if profileType := c.QueryParam("profile_type"); profileType != "" {
		return response.Success(c, taxonomy.ListingKindsForProfileType(profileType))
	}
	return response.Success(c, entity.ListingKinds())
}

func (h *MetaHandler) SearchRadii(c echo.Context) error {
	return response.Success(c, geo.SearchRadiiKm)
}

func (h *MetaHandler) Languages(c echo.Context) error {
	return response.Success(c, i18n.Languages())
}
