package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func newTestChatUseCase(t *testing.T) (*ChatUseCase, *fakeConversationRepo, *fakeNotificationRepo) {
	t.Helper()

	userRepo := newFakeUserRepo(
		&entity.User{ID: "ana", Username: "Ana", Language: "en"},
		&entity.User{ID: "ben", Username: "Ben", Language: "fil"},
	)
	conversationRepo := newFakeConversationRepo()
	profileRepo := newFakeProfileRepo()
	notificationUC, notificationRepo := newTestNotificationUseCase(userRepo)

	uc := NewChatUseCase(conversationRepo, userRepo, profileRepo, notificationUC, nil)
	return uc, conversationRepo, notificationRepo
}

func TestStartConversationDeduplicates(t *testing.T) {
	uc, _, _ := newTestChatUseCase(t)
	ctx := context.Background()

	first, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	// Second initiation from the other side must land on the same document.
	second, err := uc.StartConversation(ctx, "ben", StartConversationInput{RecipientID: "ana"})
	assert.NoError(t, err)
	assert.Equal(t, first.Conversation.ID, second.Conversation.ID)
}

func TestStartConversationRejectsSelf(t *testing.T) {
	uc, _, _ := newTestChatUseCase(t)

	_, err := uc.StartConversation(context.Background(), "ana", StartConversationInput{RecipientID: "ana"})
	assert.Error(t, err)
}

func TestSendMessageIncrementsRecipientUnreadOnly(t *testing.T) {
	uc, conversationRepo, _ := newTestChatUseCase(t)
	ctx := context.Background()

	conv, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	_, err = uc.SendMessage(ctx, "ana", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "kumusta"})
	assert.NoError(t, err)

	stored, err := conversationRepo.GetByID(ctx, conv.Conversation.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.UnreadCount["ben"])
	assert.Equal(t, 0, stored.UnreadCount["ana"])
	assert.Equal(t, "kumusta", stored.LastMessage)

	_, err = uc.SendMessage(ctx, "ana", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "may bago kami"})
	assert.NoError(t, err)
	assert.Equal(t, 2, stored.UnreadCount["ben"])
	assert.Equal(t, 0, stored.UnreadCount["ana"])
}

func TestMarkConversationReadResetsOnlyOpener(t *testing.T) {
	uc, conversationRepo, _ := newTestChatUseCase(t)
	ctx := context.Background()

	conv, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	_, err = uc.SendMessage(ctx, "ana", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "ping"})
	assert.NoError(t, err)
	_, err = uc.SendMessage(ctx, "ben", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "pong"})
	assert.NoError(t, err)

	stored, _ := conversationRepo.GetByID(ctx, conv.Conversation.ID)
	assert.Equal(t, 1, stored.UnreadCount["ana"])
	assert.Equal(t, 1, stored.UnreadCount["ben"])

	assert.NoError(t, uc.MarkConversationRead(ctx, "ben", conv.Conversation.ID))

	assert.Equal(t, 0, stored.UnreadCount["ben"])
	assert.Equal(t, 1, stored.UnreadCount["ana"])
}

func TestSendMessageRequiresMembership(t *testing.T) {
	uc, _, _ := newTestChatUseCase(t)
	ctx := context.Background()

	conv, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	_, err = uc.SendMessage(ctx, "carlo", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "hoy"})
	assert.Error(t, err)
}

func TestCanAccessConversationMatchesParticipants(t *testing.T) {
	uc, _, _ := newTestChatUseCase(t)
	ctx := context.Background()

	conv, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	assert.True(t, uc.CanAccessConversation(ctx, conv.Conversation.ID, "ana"))
	assert.True(t, uc.CanAccessConversation(ctx, conv.Conversation.ID, "ben"))
	// Knowing the conversation id is not enough to listen in.
	assert.False(t, uc.CanAccessConversation(ctx, conv.Conversation.ID, "carlo"))
	assert.False(t, uc.CanAccessConversation(ctx, "no-such-conversation", "ana"))
}

func TestSendMessageNotifiesRecipientInTheirLanguage(t *testing.T) {
	uc, _, notificationRepo := newTestChatUseCase(t)
	ctx := context.Background()

	conv, err := uc.StartConversation(ctx, "ana", StartConversationInput{RecipientID: "ben"})
	assert.NoError(t, err)

	_, err = uc.SendMessage(ctx, "ana", SendMessageInput{ConversationID: conv.Conversation.ID, Text: "hello"})
	assert.NoError(t, err)

	notifications, _, err := notificationRepo.ListByRecipient(ctx, "ben", "", 0, 0)
	assert.NoError(t, err)
	if assert.Len(t, notifications, 1) {
		assert.Equal(t, entity.NotificationTypeMessage, notifications[0].Type)
		// Ben's profile language is Filipino.
		assert.Equal(t, "Bagong mensahe", notifications[0].Title)
	}
}
