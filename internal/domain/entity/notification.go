package entity

import "time"

// Notification types.
const (
	NotificationTypeMessage  = "message"
	NotificationTypeReview   = "review"
	NotificationTypeFavorite = "favorite"
	NotificationTypeListing  = "listing"
	NotificationTypeReport   = "report"
)

// Notification categories, used by the list filter tabs.
const (
	NotificationCategoryChat     = "chat"
	NotificationCategoryStore    = "store"
	NotificationCategoryActivity = "activity"
)

type Notification struct {
	ID          string                 `json:"id" firestore:"id"`
	RecipientID string                 `json:"recipient_id" firestore:"recipientId"`
	SenderID    string                 `json:"sender_id,omitempty" firestore:"senderId,omitempty"`
	Type        string                 `json:"type" firestore:"type"`
	Category    string                 `json:"category" firestore:"category"`
	Title       string                 `json:"title" firestore:"title"`
	Body        string                 `json:"body" firestore:"body"`
	Data        map[string]interface{} `json:"data,omitempty" firestore:"data,omitempty"`
	IsRead      bool                   `json:"is_read" firestore:"isRead"`
	CreatedAt   time.Time              `json:"created_at" firestore:"createdAt"`
}
