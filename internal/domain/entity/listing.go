package entity

import (
	"time"
)

// Listing kinds. Each kind lives in its own collection but shares one
// normalized shape; the old per-screen document variants collapse into this.
const (
	ListingKindProduct   = "product"
	ListingKindService   = "service"
	ListingKindBooking   = "booking"
	ListingKindLabor     = "labor"
	ListingKindPortfolio = "portfolio"
)

type Listing struct {
	ID          string   `json:"id" firestore:"id"`
	StoreID     string   `json:"store_id" firestore:"storeId"`
	Kind        string   `json:"kind" firestore:"kind"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64  `json:"price,omitempty" firestore:"price,omitempty"` // zero for portfolio items
	Unit        string   `json:"unit,omitempty" firestore:"unit,omitempty"`   // "piece", "kilo", "hour", "day"
	Category    string   `json:"category,omitempty" firestore:"category,omitempty"`
	Images      []string `json:"images,omitempty" firestore:"images,omitempty"`
	Available   bool     `json:"available" firestore:"available"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ListingKinds returns every known kind, in display order.
func ListingKinds() []string {
	return []string{ListingKindProduct, ListingKindService, ListingKindBooking, ListingKindLabor, ListingKindPortfolio}
}

// ValidListingKind reports whether kind names a known listing collection.
func ValidListingKind(kind string) bool {
	switch kind {
	case ListingKindProduct, ListingKindService, ListingKindBooking, ListingKindLabor, ListingKindPortfolio:
		return true
	}
	return false
}
