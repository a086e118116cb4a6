package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(middleware.AuthRateLimit())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/guest", authHandler.GuestLogin)
	auth.POST("/forgot-password", authHandler.ForgotPassword)

	authed := e.Group("/v1/auth")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("/change-password", authHandler.ChangePassword)
}
