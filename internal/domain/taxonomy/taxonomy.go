// Package taxonomy holds the static profile-type, listing-type, and business
// category tables plus their lookup helpers. The tables are configuration,
// not state: lookups are pure and unknown ids resolve to the "other" entry.
package taxonomy

type ProfileType struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Icon         string   `json:"icon"`
	ListingKinds []string `json:"listing_kinds"`
}

type Category struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Icon         string   `json:"icon"`
	ProfileTypes []string `json:"profile_types"` // profile types this category applies to; empty means all
}

var profileTypes = []ProfileType{
	{ID: "store", Label: "Store", Icon: "storefront", ListingKinds: []string{"product"}},
	{ID: "service-provider", Label: "Service Provider", Icon: "construct", ListingKinds: []string{"service", "booking"}},
	{ID: "freelancer", Label: "Freelancer", Icon: "laptop", ListingKinds: []string{"service", "portfolio"}},
	{ID: "producer", Label: "Producer", Icon: "leaf", ListingKinds: []string{"product"}},
	{ID: "home-seller", Label: "Home Seller", Icon: "home", ListingKinds: []string{"product"}},
	{ID: "student", Label: "Student Entrepreneur", Icon: "school", ListingKinds: []string{"product", "service"}},
	{ID: "informal-worker", Label: "Informal Worker", Icon: "hammer", ListingKinds: []string{"labor"}},
	{ID: "other", Label: "Other", Icon: "ellipsis-horizontal", ListingKinds: []string{"product", "service"}},
}

var categories = []Category{
	{ID: "other", Label: "Other", Icon: "ellipsis-horizontal"},
	{ID: "sari-sari", Label: "Sari-sari Store", Icon: "basket", ProfileTypes: []string{"store", "home-seller"}},
	{ID: "food-stall", Label: "Food Stall / Carinderia", Icon: "fast-food", ProfileTypes: []string{"store", "home-seller", "student"}},
	{ID: "bakery", Label: "Bakery", Icon: "cafe", ProfileTypes: []string{"store"}},
	{ID: "wet-market", Label: "Wet Market Vendor", Icon: "fish", ProfileTypes: []string{"store", "producer"}},
	{ID: "farm-produce", Label: "Farm Produce", Icon: "leaf", ProfileTypes: []string{"producer"}},
	{ID: "ukay-ukay", Label: "Ukay-ukay / Thrift", Icon: "shirt", ProfileTypes: []string{"store", "home-seller"}},
	{ID: "repair", Label: "Repair Services", Icon: "build", ProfileTypes: []string{"service-provider", "informal-worker"}},
	{ID: "tailoring", Label: "Tailoring / Sewing", Icon: "cut", ProfileTypes: []string{"service-provider", "home-seller"}},
	{ID: "beauty", Label: "Beauty & Grooming", Icon: "sparkles", ProfileTypes: []string{"service-provider", "freelancer"}},
	{ID: "laundry", Label: "Laundry", Icon: "water", ProfileTypes: []string{"service-provider"}},
	{ID: "transport", Label: "Transport / Tricycle", Icon: "car", ProfileTypes: []string{"service-provider", "informal-worker"}},
	{ID: "construction", Label: "Construction / Labor", Icon: "hammer", ProfileTypes: []string{"informal-worker"}},
	{ID: "housekeeping", Label: "Housekeeping", Icon: "home", ProfileTypes: []string{"informal-worker", "service-provider"}},
	{ID: "design", Label: "Design & Creatives", Icon: "color-palette", ProfileTypes: []string{"freelancer", "student"}},
	{ID: "tutoring", Label: "Tutoring", Icon: "book", ProfileTypes: []string{"freelancer", "student"}},
	{ID: "tech", Label: "Tech & Gadget Services", Icon: "phone-portrait", ProfileTypes: []string{"freelancer", "service-provider"}},
	{ID: "crafts", Label: "Handicrafts", Icon: "gift", ProfileTypes: []string{"producer", "home-seller", "student"}},
}

// ProfileTypeInfo returns the profile type for id, falling back to the
// "other" entry for unknown ids.
func ProfileTypeInfo(id string) ProfileType {
	for _, pt := range profileTypes {
		if pt.ID == id {
			return pt
		}
	}
	return profileTypes[len(profileTypes)-1]
}

// CategoryInfo returns the category for id, falling back to "other".
func CategoryInfo(id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return categories[0]
}

// CategoriesForProfileType returns the categories applicable to a profile
// type. The "other" category is always included.
func CategoriesForProfileType(profileTypeID string) []Category {
	var result []Category
	for _, c := range categories {
		if len(c.ProfileTypes) == 0 {
			result = append(result, c)
			continue
		}
		for _, pt := range c.ProfileTypes {
			if pt == profileTypeID {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// ListingKindsForProfileType returns the listing kinds a profile type may
// publish.
func ListingKindsForProfileType(profileTypeID string) []string {
	return ProfileTypeInfo(profileTypeID).ListingKinds
}

// ProfileTypes returns all profile types, in display order.
func ProfileTypes() []ProfileType {
	return profileTypes
}

// Categories returns all categories, in display order.
func Categories() []Category {
	return categories
}

// ValidProfileType reports whether id names a real profile type (the "other"
// fallback counts).
func ValidProfileType(id string) bool {
	for _, pt := range profileTypes {
		if pt.ID == id {
			return true
		}
	}
	return false
}
