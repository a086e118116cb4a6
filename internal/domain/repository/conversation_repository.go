package repository

import (
	"context"

	"hanaplokal/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	// GetByParticipantKey is the index-assisted duplicate check used before
	// creating a conversation.
	GetByParticipantKey(ctx context.Context, key string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)
	Update(ctx context.Context, conversation *entity.Conversation) error

	// AppendMessage writes the message document and the parent conversation's
	// summary fields (lastMessage, lastMessageAt, recipient unread counters)
	// in one atomic batch.
	AppendMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	// ResetUnread zeroes one participant's unread counter.
	ResetUnread(ctx context.Context, conversationID, userID string) error
}
