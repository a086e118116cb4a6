package entity

import (
	"time"
)

// StoreReview holds at most one document per (storeId, userId) pair; a second
// submission updates the existing document in place.
type StoreReview struct {
	ID        string    `json:"id" firestore:"id"`
	StoreID   string    `json:"store_id" firestore:"storeId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type StoreReport struct {
	ID          string     `json:"id" firestore:"id"`
	StoreID     string     `json:"store_id" firestore:"storeId"`
	ReporterID  string     `json:"reporter_id" firestore:"reporterId"`
	Reason      string     `json:"reason" firestore:"reason"` // "scam", "inappropriate", "fake_listing", "harassment", "other"
	Description string     `json:"description,omitempty" firestore:"description,omitempty"`
	Status      string     `json:"status" firestore:"status"` // "pending", "resolved", "dismissed"
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
}
