package entity

import "time"

// Message is append-only and lives in the messages sub-collection of its
// conversation.
type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	SenderName     string    `json:"sender_name" firestore:"senderName"`
	Text           string    `json:"text" firestore:"text"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
