package router

import (
	"hanaplokal/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupMetaRouter(e *echo.Echo) {
	metaHandler := handler.NewMetaHandler()

	meta := e.Group("/v1/meta")
	meta.GET("/profile-types", metaHandler.ProfileTypes)
	meta.GET("/categories", metaHandler.Categories)
	meta.GET("/listing-kinds", metaHandler.ListingKinds)
	meta.GET("/search-radii", metaHandler.SearchRadii)
	meta.GET("/languages", metaHandler.Languages)
}
