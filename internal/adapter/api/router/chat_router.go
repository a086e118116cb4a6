package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()
	webSocketHandler := handler.GetWebSocketHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.POST("", chatHandler.StartConversation)
	conversations.GET("", chatHandler.ListConversations)
	conversations.GET("/:id/messages", chatHandler.GetMessages)
	conversations.POST("/:id/messages", chatHandler.SendMessage)
	conversations.POST("/:id/read", chatHandler.MarkRead)

	e.GET("/ws", webSocketHandler.HandleWebSocket, authMiddleware.AuthenticateWebSocket)
}
