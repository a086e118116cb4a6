package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDiscoveryRouter(e *echo.Echo) {
	discoveryHandler := handler.GetDiscoveryHandler()

	discover := e.Group("/v1/discover")
	discover.Use(middleware.GeneralRateLimit())
	discover.GET("", discoveryHandler.Discover)
}
