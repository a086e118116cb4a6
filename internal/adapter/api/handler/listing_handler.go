package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Price       float64  `json:"price,omitempty" validate:"min=0"`
	Unit        string   `json:"unit,omitempty" validate:"max=20"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

func (r listingRequest) toInput() usecase.ListingInput {
	return usecase.ListingInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Category:    r.Category,
		Images:      r.Images,
		Available:   r.Available,
	}
}

func (h *ListingHandler) Create(c echo.Context) error {
	storeID := c.Param("storeId")
	kind := c.Param("kind")
	if storeID == "" || kind == "" {
		return response.Error(c, errors.BadRequest("Store ID and listing kind are required", nil))
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	listing, err := h.listingUseCase.Create(c.Request().Context(), userID, storeID, kind, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetByID(c echo.Context) error {
	kind := c.Param("kind")
	id := c.Param("id")
	if kind == "" || id == "" {
		return response.Error(c, errors.BadRequest("Listing kind and ID are required", nil))
	}

	listing, err := h.listingUseCase.GetByID(c.Request().Context(), kind, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListByStore(c echo.Context) error {
	storeID := c.Param("storeId")
	kind := c.Param("kind")
	if storeID == "" || kind == "" {
		return response.Error(c, errors.BadRequest("Store ID and listing kind are required", nil))
	}

	listings, err := h.listingUseCase.ListByStore(c.Request().Context(), kind, storeID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) Update(c echo.Context) error {
	kind := c.Param("kind")
	id := c.Param("id")
	if kind == "" || id == "" {
		return response.Error(c, errors.BadRequest("Listing kind and ID are required", nil))
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	listing, err := h.listingUseCase.Update(c.Request().Context(), userID, kind, id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	kind := c.Param("kind")
	id := c.Param("id")
	if kind == "" || id == "" {
		return response.Error(c, errors.BadRequest("Listing kind and ID are required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), userID, kind, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted",
	})
}
