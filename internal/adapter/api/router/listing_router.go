package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	e.GET("/v1/stores/:storeId/listings/:kind", listingHandler.ListByStore)
	e.GET("/v1/listings/:kind/:id", listingHandler.GetByID)

	listings := e.Group("/v1/stores/:storeId/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.POST("/:kind", listingHandler.Create)

	manage := e.Group("/v1/listings")
	manage.Use(authMiddleware.Authenticate)
	manage.PUT("/:kind/:id", listingHandler.Update)
	manage.DELETE("/:kind/:id", listingHandler.Delete)
}
