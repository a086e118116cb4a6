package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
	"hanaplokal/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type startConversationRequest struct {
	RecipientID    string `json:"recipient_id" validate:"required"`
	StoreID        string `json:"store_id,omitempty"`
	InitialMessage string `json:"initial_message,omitempty" validate:"max=2000"`
}

func (h *ChatHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	conversation, err := h.chatUseCase.StartConversation(c.Request().Context(), userID, usecase.StartConversationInput{
		RecipientID:    req.RecipientID,
		StoreID:        req.StoreID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

func (h *ChatHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	conversations, total, err := h.chatUseCase.ListConversations(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, pagination.Page, pagination.PageSize)
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return response.Error(c, errors.BadRequest("Conversation ID is required", nil))
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ConversationID: conversationID,
		Text:           req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return response.Error(c, errors.BadRequest("Conversation ID is required", nil))
	}

	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.GetMessages(c.Request().Context(), userID, conversationID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return response.Error(c, errors.BadRequest("Conversation ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.chatUseCase.MarkConversationRead(c.Request().Context(), userID, conversationID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Conversation marked as read",
	})
}
