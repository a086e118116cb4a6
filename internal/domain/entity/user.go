package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role     string `json:"role" firestore:"role"`     // "user", "admin"
	Status   string `json:"status" firestore:"status"` // "active", "disabled"
	IsGuest  bool   `json:"is_guest" firestore:"isGuest"`

	PhotoURL  string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Language  string `json:"language,omitempty" firestore:"language,omitempty"` // "en", "fil"
	PushToken string `json:"push_token,omitempty" firestore:"pushToken,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
