package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
	"hanaplokal/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	userID := c.Get("uid").(string)

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), userID, storeID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.favoriteUseCase.Remove(c.Request().Context(), userID, storeID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Favorite removed",
	})
}

func (h *FavoriteHandler) Check(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	userID := c.Get("uid").(string)

	isFavorite, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), userID, storeID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"is_favorite": isFavorite,
	})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	favorites, total, err := h.favoriteUseCase.List(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, favorites, total, pagination.Page, pagination.PageSize)
}
