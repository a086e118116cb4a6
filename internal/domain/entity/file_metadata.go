package entity

import "time"

type FileMetadata struct {
	ID          string    `json:"id" firestore:"id"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	URL         string    `json:"url" firestore:"url"`
	ObjectName  string    `json:"object_name" firestore:"objectName"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	Size        int64     `json:"size" firestore:"size"`
	Folder      string    `json:"folder" firestore:"folder"` // "listings", "profiles", "portfolio", "covers", "documents"
	Public      bool      `json:"public" firestore:"public"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
