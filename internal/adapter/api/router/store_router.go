package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetBusinessProfileHandler()

	e.GET("/v1/stores/:storeId", profileHandler.GetByID)

	stores := e.Group("/v1/stores")
	stores.Use(authMiddleware.Authenticate)
	stores.POST("", profileHandler.Create)
	stores.PUT("/:storeId", profileHandler.Update)
	stores.DELETE("/:storeId", profileHandler.Delete)

	myStores := e.Group("/v1/my-stores")
	myStores.Use(authMiddleware.Authenticate)
	myStores.GET("", profileHandler.ListMine)
}
