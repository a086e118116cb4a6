package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
)

type BusinessProfileHandler struct {
	profileUseCase *usecase.BusinessProfileUseCase
}

func NewBusinessProfileHandler(profileUseCase *usecase.BusinessProfileUseCase) *BusinessProfileHandler {
	return &BusinessProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type geoPointRequest struct {
	Lat      float64 `json:"lat" validate:"latitude"`
	Lng      float64 `json:"lng" validate:"longitude"`
	Accuracy float64 `json:"accuracy,omitempty"`
}

type businessProfileRequest struct {
	Name           string                 `json:"name" validate:"required,min=2,max=100"`
	Description    string                 `json:"description,omitempty" validate:"max=2000"`
	Address        string                 `json:"address,omitempty" validate:"max=500"`
	Location       *geoPointRequest       `json:"location,omitempty"`
	ProfileTypes   []string               `json:"profile_types" validate:"required,min=1"`
	PrimaryType    string                 `json:"primary_type,omitempty"`
	Categories     []string               `json:"categories,omitempty"`
	Hours          map[string]string      `json:"hours,omitempty"`
	ContactNumbers []entity.ContactNumber `json:"contact_numbers,omitempty"`
	SocialLinks    []entity.SocialLink    `json:"social_links,omitempty"`
	CoverImage     string                 `json:"cover_image,omitempty" validate:"omitempty,url"`
	Images         []string               `json:"images,omitempty"`
}

func (r businessProfileRequest) toInput() usecase.BusinessProfileInput {
	input := usecase.BusinessProfileInput{
		Name:           r.Name,
		Description:    r.Description,
		Address:        r.Address,
		ProfileTypes:   r.ProfileTypes,
		PrimaryType:    r.PrimaryType,
		Categories:     r.Categories,
		Hours:          r.Hours,
		ContactNumbers: r.ContactNumbers,
		SocialLinks:    r.SocialLinks,
		CoverImage:     r.CoverImage,
		Images:         r.Images,
	}
	if r.Location != nil {
		input.Location = &entity.GeoPoint{
			Lat:      r.Location.Lat,
			Lng:      r.Location.Lng,
			Accuracy: r.Location.Accuracy,
		}
	}
	return input
}

func (h *BusinessProfileHandler) Create(c echo.Context) error {
	var req businessProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	profile, err := h.profileUseCase.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profile)
}

func (h *BusinessProfileHandler) GetByID(c echo.Context) error {
	id := c.Param("storeId")
	if id == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	profile, err := h.profileUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *BusinessProfileHandler) ListMine(c echo.Context) error {
	userID := c.Get("uid").(string)

	profiles, err := h.profileUseCase.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}

func (h *BusinessProfileHandler) Update(c echo.Context) error {
	id := c.Param("storeId")
	if id == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	var req businessProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	profile, err := h.profileUseCase.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *BusinessProfileHandler) Delete(c echo.Context) error {
	id := c.Param("storeId")
	if id == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.profileUseCase.Delete(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Business profile deleted",
	})
}
