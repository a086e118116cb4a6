package entity

import (
	"sort"
	"strings"
	"time"
)

// ParticipantInfo carries denormalized display data so the conversation list
// renders without a per-row user lookup.
type ParticipantInfo struct {
	DisplayName string `json:"display_name" firestore:"displayName"`
	PhotoURL    string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	StoreName   string `json:"store_name,omitempty" firestore:"storeName,omitempty"`
}

type Conversation struct {
	ID           string   `json:"id" firestore:"id"`
	Participants []string `json:"participants" firestore:"participants"`

	// ParticipantKey is the sorted uid pair joined with "_". Conversation
	// creation looks this up with an equality query instead of scanning the
	// caller's conversations, so a second initiation with the same person
	// resolves to the existing document.
	ParticipantKey string `json:"participant_key" firestore:"participantKey"`

	ParticipantsInfo map[string]ParticipantInfo `json:"participants_info" firestore:"participantsInfo"`

	LastMessage   string         `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time      `json:"last_message_at" firestore:"lastMessageAt"`
	UnreadCount   map[string]int `json:"unread_count" firestore:"unreadCount"` // uid -> count

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ParticipantKeyFor builds the deterministic lookup key for a uid pair.
func ParticipantKeyFor(uidA, uidB string) string {
	ids := []string{uidA, uidB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// HasParticipant reports whether uid takes part in the conversation.
func (c *Conversation) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}
