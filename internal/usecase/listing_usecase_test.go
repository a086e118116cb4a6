package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func newTestListingUseCase(t *testing.T) (*ListingUseCase, *fakeProfileRepo) {
	t.Helper()

	profileRepo := newFakeProfileRepo(
		&entity.BusinessProfile{
			ID:           "store1",
			OwnerID:      "owner",
			Name:         "Nena's Sari-Sari",
			Status:       "active",
			ProfileTypes: []string{"store"},
		},
		&entity.BusinessProfile{
			ID:           "worker1",
			OwnerID:      "mang-kanor",
			Name:         "Kanor Repairs",
			Status:       "active",
			ProfileTypes: []string{"informal-worker"},
		},
	)
	listingRepo := newFakeListingRepo()

	return NewListingUseCase(listingRepo, profileRepo), profileRepo
}

func TestCreateListingMaintainsStoreCounter(t *testing.T) {
	uc, profileRepo := newTestListingUseCase(t)
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner", "store1", entity.ListingKindProduct, ListingInput{
		Name:  "Suka",
		Price: 15,
	})
	assert.NoError(t, err)
	assert.True(t, listing.Available)

	store, _ := profileRepo.GetByID(ctx, "store1")
	assert.Equal(t, 1, store.TotalListings)

	assert.NoError(t, uc.Delete(ctx, "owner", entity.ListingKindProduct, listing.ID))
	store, _ = profileRepo.GetByID(ctx, "store1")
	assert.Equal(t, 0, store.TotalListings)
}

func TestCreateListingRejectsKindForProfileType(t *testing.T) {
	uc, _ := newTestListingUseCase(t)
	ctx := context.Background()

	// A sari-sari store cannot publish labor listings.
	_, err := uc.Create(ctx, "owner", "store1", entity.ListingKindLabor, ListingInput{Name: "Hakot"})
	assert.Error(t, err)

	// An informal worker can.
	_, err = uc.Create(ctx, "mang-kanor", "worker1", entity.ListingKindLabor, ListingInput{Name: "Hakot"})
	assert.NoError(t, err)
}

func TestCreateListingRejectsUnknownKind(t *testing.T) {
	uc, _ := newTestListingUseCase(t)

	_, err := uc.Create(context.Background(), "owner", "store1", "subscription", ListingInput{Name: "X"})
	assert.Error(t, err)
}

func TestCreateListingRequiresOwnership(t *testing.T) {
	uc, _ := newTestListingUseCase(t)

	_, err := uc.Create(context.Background(), "somebody-else", "store1", entity.ListingKindProduct, ListingInput{Name: "Suka"})
	assert.Error(t, err)
}

func TestCreateListingNormalizesUnknownCategory(t *testing.T) {
	uc, _ := newTestListingUseCase(t)

	listing, err := uc.Create(context.Background(), "owner", "store1", entity.ListingKindProduct, ListingInput{
		Name:     "Suka",
		Category: "does-not-exist",
	})
	assert.NoError(t, err)
	assert.Equal(t, "other", listing.Category)
}
