package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/reports", reviewHandler.ListReports)
	admin.POST("/reports/:reportId/resolve", reviewHandler.ResolveReport)
}
