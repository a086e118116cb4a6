package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/geo"
)

// Manila city hall as the search origin; the fixture stores sit at known
// distances from it.
const (
	originLat = 14.5995
	originLng = 120.9842
)

func newTestDiscoveryUseCase(t *testing.T) *DiscoveryUseCase {
	t.Helper()

	profileRepo := newFakeProfileRepo(
		&entity.BusinessProfile{
			ID:           "near",
			Name:         "Tindahan ni Aling Rosa",
			Status:       "active",
			Categories:   []string{"sari-sari"},
			ProfileTypes: []string{"store"},
			Location:     &entity.GeoPoint{Lat: 14.6010, Lng: 120.9850},
		},
		&entity.BusinessProfile{
			ID:           "far",
			Name:         "Cebu Lechon House",
			Status:       "active",
			Categories:   []string{"food-stall"},
			ProfileTypes: []string{"store"},
			Location:     &entity.GeoPoint{Lat: 10.3157, Lng: 123.8854},
		},
		&entity.BusinessProfile{
			ID:           "nowhere",
			Name:         "Online Crafts",
			Status:       "active",
			ProfileTypes: []string{"freelancer"},
		},
		&entity.BusinessProfile{
			ID:     "gone",
			Name:   "Closed Store",
			Status: "deleted",
		},
	)

	listingRepo := newFakeListingRepo(
		&entity.Listing{ID: "l1", StoreID: "near", Kind: entity.ListingKindProduct, Name: "Suka at Toyo", Available: true},
		&entity.Listing{ID: "l2", StoreID: "far", Kind: entity.ListingKindProduct, Name: "Lechon Belly", Available: true},
		&entity.Listing{ID: "l3", StoreID: "far", Kind: entity.ListingKindProduct, Name: "Hidden Item", Available: false},
	)

	return NewDiscoveryUseCase(profileRepo, listingRepo)
}

func TestDiscoverFiltersByRadius(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	results, total, err := uc.Discover(context.Background(), DiscoverInput{
		Lat:      originLat,
		Lng:      originLng,
		RadiusKm: 5,
	})
	assert.NoError(t, err)

	// The Cebu store is ~570 km away; the store without coordinates is kept.
	assert.Equal(t, int64(2), total)
	ids := make(map[string]bool)
	for _, r := range results {
		ids[r.ID] = true
	}
	assert.True(t, ids["near"])
	assert.True(t, ids["nowhere"])
	assert.False(t, ids["far"])
}

func TestDiscoverNoLimitRadiusExcludesNothing(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	_, total, err := uc.Discover(context.Background(), DiscoverInput{
		Lat:      originLat,
		Lng:      originLng,
		RadiusKm: geo.NoLimit,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestDiscoverRejectsArbitraryRadius(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	_, _, err := uc.Discover(context.Background(), DiscoverInput{RadiusKm: 7})
	assert.Error(t, err)
}

func TestDiscoverSortsNearestFirst(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	results, _, err := uc.Discover(context.Background(), DiscoverInput{
		Lat:      originLat,
		Lng:      originLng,
		RadiusKm: geo.NoLimit,
	})
	assert.NoError(t, err)

	if assert.Len(t, results, 3) {
		assert.Equal(t, "near", results[0].ID)
		assert.Equal(t, "far", results[1].ID)
		// Stores without coordinates sort last.
		assert.Equal(t, "nowhere", results[2].ID)
		assert.Equal(t, -1.0, results[2].DistanceKm)
	}
}

func TestDiscoverFiltersByCategoryAndProfileType(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	results, _, err := uc.Discover(context.Background(), DiscoverInput{Category: "sari-sari"})
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "near", results[0].ID)
	}

	results, _, err = uc.Discover(context.Background(), DiscoverInput{ProfileType: "freelancer"})
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "nowhere", results[0].ID)
	}
}

func TestDiscoverSearchMatchesListings(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	// "lechon" only appears in the far store's product listing, not its name.
	results, _, err := uc.Discover(context.Background(), DiscoverInput{Query: "belly"})
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "far", results[0].ID)
	}

	// Unavailable listings do not surface their store.
	results, _, err = uc.Discover(context.Background(), DiscoverInput{Query: "hidden item"})
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestDiscoverSearchMatchesStoreName(t *testing.T) {
	uc := newTestDiscoveryUseCase(t)

	results, _, err := uc.Discover(context.Background(), DiscoverInput{Query: "aling rosa"})
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "near", results[0].ID)
	}
}
