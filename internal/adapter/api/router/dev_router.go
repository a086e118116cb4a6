package router

import (
	"hanaplokal/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupDevRouter registers the development-only token endpoints. Call it
// only when ENVIRONMENT=development.
func SetupDevRouter(e *echo.Echo) {
	devTokenHandler := handler.GetDevTokenHandler()

	dev := e.Group("/v1/dev")
	dev.GET("/user-token", devTokenHandler.GenerateUserToken)
	dev.GET("/admin-token", devTokenHandler.GenerateAdminToken)
}
