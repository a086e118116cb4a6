package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.List)

	stores := e.Group("/v1/stores/:storeId/favorite")
	stores.Use(authMiddleware.Authenticate)
	stores.POST("", favoriteHandler.Add)
	stores.DELETE("", favoriteHandler.Remove)
	stores.GET("", favoriteHandler.Check)
}
