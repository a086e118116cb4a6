package repository

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func TestMessageUpdatesIncrementsRecipientsOnly(t *testing.T) {
	now := time.Now()
	conversation := &entity.Conversation{
		ID:           "conv1",
		Participants: []string{"ana", "ben"},
	}
	message := &entity.Message{
		ConversationID: "conv1",
		SenderID:       "ana",
		Text:           "kamusta",
		CreatedAt:      now,
	}

	updates := messageUpdates(conversation, message)

	assert.Len(t, updates, 4)
	assert.Equal(t, firestore.Update{Path: "lastMessage", Value: "kamusta"}, updates[0])
	assert.Equal(t, firestore.Update{Path: "lastMessageAt", Value: now}, updates[1])
	assert.Equal(t, firestore.Update{Path: "updatedAt", Value: now}, updates[2])

	// The counter bump targets the map entry through a FieldPath, and only
	// for the recipient.
	assert.Equal(t, firestore.FieldPath{"unreadCount", "ben"}, updates[3].FieldPath)
	assert.Empty(t, updates[3].Path)
	assert.Equal(t, firestore.Increment(1), updates[3].Value)
}

func TestMessageUpdatesSkipsSenderInGroup(t *testing.T) {
	conversation := &entity.Conversation{
		ID:           "conv2",
		Participants: []string{"ana", "ben", "carlo"},
	}
	message := &entity.Message{
		ConversationID: "conv2",
		SenderID:       "ben",
		Text:           "hello",
		CreatedAt:      time.Now(),
	}

	updates := messageUpdates(conversation, message)

	var bumped []string
	for _, u := range updates[3:] {
		assert.Len(t, u.FieldPath, 2)
		bumped = append(bumped, u.FieldPath[1])
	}
	assert.ElementsMatch(t, []string{"ana", "carlo"}, bumped)
}
