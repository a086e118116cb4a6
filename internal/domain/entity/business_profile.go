package entity

import (
	"time"
)

// GeoPoint is the stored location of a business, with the accuracy (in
// meters) reported by the device that captured it.
type GeoPoint struct {
	Lat      float64 `json:"lat" firestore:"lat"`
	Lng      float64 `json:"lng" firestore:"lng"`
	Accuracy float64 `json:"accuracy,omitempty" firestore:"accuracy,omitempty"`
}

type ContactNumber struct {
	Label  string `json:"label" firestore:"label"` // "mobile", "landline", "viber"
	Number string `json:"number" firestore:"number"`
}

type SocialLink struct {
	Platform string `json:"platform" firestore:"platform"` // "facebook", "instagram", "tiktok"
	URL      string `json:"url" firestore:"url"`
}

type BusinessProfile struct {
	ID          string    `json:"id" firestore:"id"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Address     string    `json:"address" firestore:"address"`
	Location    *GeoPoint `json:"location,omitempty" firestore:"location,omitempty"`

	ProfileTypes []string `json:"profile_types" firestore:"profileTypes"`
	PrimaryType  string   `json:"primary_type" firestore:"primaryType"`
	Categories   []string `json:"categories" firestore:"categories"`

	Hours          map[string]string `json:"hours,omitempty" firestore:"hours,omitempty"` // day -> "08:00-17:00" or "closed"
	ContactNumbers []ContactNumber   `json:"contact_numbers,omitempty" firestore:"contactNumbers,omitempty"`
	SocialLinks    []SocialLink      `json:"social_links,omitempty" firestore:"socialLinks,omitempty"`
	CoverImage     string            `json:"cover_image,omitempty" firestore:"coverImage,omitempty"`
	Images         []string          `json:"images,omitempty" firestore:"images,omitempty"`

	// Denormalized counters, maintained by the review and listing flows.
	Rating        float64 `json:"rating" firestore:"rating"`
	ReviewCount   int     `json:"review_count" firestore:"reviewCount"`
	TotalListings int     `json:"total_listings" firestore:"totalListings"`

	Status    string    `json:"status" firestore:"status"` // "active", "hidden", "deleted"
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
