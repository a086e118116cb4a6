package entity

import (
	"time"
)

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	StoreID   string    `json:"store_id" firestore:"storeId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// FavoriteWithStore joins a favorite row with its store for list responses.
// Store is nil when the favorited store was deleted or deactivated.
type FavoriteWithStore struct {
	Favorite
	Store *BusinessProfile `json:"store"`
}
