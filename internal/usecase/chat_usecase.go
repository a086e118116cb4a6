package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/infrastructure/ratelimit"
	ws "hanaplokal/internal/infrastructure/websocket"
	"hanaplokal/pkg/errors"
)

type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	profileRepo      repository.BusinessProfileRepository
	notificationUC   *NotificationUseCase
	wsManager        *ws.Manager
	rateLimiter      *ratelimit.RateLimiter
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	profileRepo repository.BusinessProfileRepository,
	notificationUC *NotificationUseCase,
	wsManager *ws.Manager,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		notificationUC:   notificationUC,
		wsManager:        wsManager,
		rateLimiter:      rateLimiter,
	}
}

type StartConversationInput struct {
	RecipientID    string
	StoreID        string
	InitialMessage string
}

type SendMessageInput struct {
	ConversationID string
	Text           string
}

type ConversationResponse struct {
	*entity.Conversation
	OtherUser *entity.User `json:"other_user,omitempty"`
}

// StartConversation returns the existing conversation between the two users
// when there is one; the lookup runs on the sorted participant key, so a
// second initiation in either direction lands on the same document.
func (uc *ChatUseCase) StartConversation(ctx context.Context, userID string, input StartConversationInput) (*ConversationResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "start_conversation")
	if !allowed {
		log.Printf("StartConversation Rate Limited: User %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Too many new conversations", waitTime)
	}

	if userID == input.RecipientID {
		return nil, errors.BadRequest("You cannot message yourself", nil)
	}

	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, errors.NotFound("Recipient not found", err)
	}
	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := entity.ParticipantKeyFor(userID, input.RecipientID)

	conversation, err := uc.conversationRepo.GetByParticipantKey(ctx, key)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		conversation = &entity.Conversation{
			Participants:   []string{userID, input.RecipientID},
			ParticipantKey: key,
			ParticipantsInfo: map[string]entity.ParticipantInfo{
				userID:            participantInfoFor(sender),
				input.RecipientID: participantInfoFor(recipient),
			},
			UnreadCount: map[string]int{userID: 0, input.RecipientID: 0},
		}

		if input.StoreID != "" {
			if store, storeErr := uc.profileRepo.GetByID(ctx, input.StoreID); storeErr == nil {
				info := conversation.ParticipantsInfo[store.OwnerID]
				info.StoreName = store.Name
				conversation.ParticipantsInfo[store.OwnerID] = info
			}
		}

		if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	if input.InitialMessage != "" {
		if _, err := uc.SendMessage(ctx, userID, SendMessageInput{
			ConversationID: conversation.ID,
			Text:           input.InitialMessage,
		}); err != nil {
			log.Printf("StartConversation Warning: Initial message failed for %s: %v", conversation.ID, err)
		} else if refreshed, refErr := uc.conversationRepo.GetByID(ctx, conversation.ID); refErr == nil {
			conversation = refreshed
		}
	}

	return &ConversationResponse{Conversation: conversation, OtherUser: recipient}, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*ConversationResponse, int64, error) {
	conversations, total, err := uc.conversationRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		resp := &ConversationResponse{Conversation: conversation}
		for _, pid := range conversation.Participants {
			if pid != userID {
				if other, err := uc.userRepo.GetByID(ctx, pid); err == nil {
					resp.OtherUser = other
				}
				break
			}
		}
		responses = append(responses, resp)
	}

	return responses, total, nil
}

// SendMessage appends the message and bumps the recipient's unread counter
// in one repository batch, then pushes websocket events and a notification.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*entity.Message, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		log.Printf("SendMessage Rate Limited: User %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("You are sending messages too fast", waitTime)
	}

	if input.Text == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	senderName := conversation.ParticipantsInfo[userID].DisplayName
	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       userID,
		SenderName:     senderName,
		Text:           input.Text,
		CreatedAt:      time.Now(),
	}

	if err := uc.conversationRepo.AppendMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	uc.broadcastMessage(conversation, message)

	for _, pid := range conversation.Participants {
		if pid == userID {
			continue
		}
		notifyErr := uc.notificationUC.Notify(ctx, NotifyInput{
			RecipientID: pid,
			SenderID:    userID,
			SenderName:  senderName,
			Type:        entity.NotificationTypeMessage,
			Category:    entity.NotificationCategoryChat,
			Data: map[string]interface{}{
				"conversation_id": conversation.ID,
				"message_id":      message.ID,
			},
		})
		if notifyErr != nil {
			log.Printf("SendMessage Warning: Notification to %s failed: %v", pid, notifyErr)
		}
	}

	return message, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
}

// CanAccessConversation reports whether the user is a participant. The
// websocket manager calls this before honoring a room join, so realtime
// events reach the same audience the HTTP endpoints allow.
func (uc *ChatUseCase) CanAccessConversation(ctx context.Context, conversationID, userID string) bool {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return false
	}
	return conversation.HasParticipant(userID)
}

// MarkConversationRead zeroes the opener's unread counter only.
func (uc *ChatUseCase) MarkConversationRead(ctx context.Context, userID, conversationID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.conversationRepo.ResetUnread(ctx, conversationID, userID)
}

func (uc *ChatUseCase) broadcastMessage(conversation *entity.Conversation, message *entity.Message) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":            "new_message",
		"conversation_id": conversation.ID,
		"message":         message,
	})
	if err != nil {
		log.Printf("broadcastMessage: marshal failed: %v", err)
		return
	}
	uc.wsManager.SendToRoom(conversation.ID, payload, message.SenderID)

	update, err := json.Marshal(map[string]interface{}{
		"type":            "conversation_update",
		"conversation_id": conversation.ID,
		"last_message":    message.Text,
		"last_message_at": message.CreatedAt,
	})
	if err != nil {
		return
	}
	for _, pid := range conversation.Participants {
		if pid != message.SenderID {
			uc.wsManager.SendToUser(pid, update)
		}
	}
}

func participantInfoFor(user *entity.User) entity.ParticipantInfo {
	return entity.ParticipantInfo{
		DisplayName: user.Username,
		PhotoURL:    user.PhotoURL,
	}
}
