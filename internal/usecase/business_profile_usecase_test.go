package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func newTestProfileUseCase(t *testing.T) *BusinessProfileUseCase {
	t.Helper()
	return NewBusinessProfileUseCase(newFakeProfileRepo(), newFakeListingRepo())
}

func TestCreateProfileWithoutCoordinates(t *testing.T) {
	uc := newTestProfileUseCase(t)
	ctx := context.Background()

	// An online-only seller has no pin on the map.
	profile, err := uc.Create(ctx, "owner1", BusinessProfileInput{
		Name:         "Online Crafts",
		Address:      "Quezon City",
		ProfileTypes: []string{"freelancer"},
	})
	assert.NoError(t, err)
	assert.Nil(t, profile.Location)

	fetched, err := uc.GetByID(ctx, profile.ID)
	assert.NoError(t, err)
	assert.Nil(t, fetched.Location)
}

func TestUpdateProfileKeepsLocationWhenOmitted(t *testing.T) {
	uc := newTestProfileUseCase(t)
	ctx := context.Background()

	profile, err := uc.Create(ctx, "owner1", BusinessProfileInput{
		Name:         "Tindahan ni Aling Rosa",
		Address:      "Sampaloc, Manila",
		ProfileTypes: []string{"store"},
		Location:     &entity.GeoPoint{Lat: 14.6010, Lng: 120.9850},
	})
	assert.NoError(t, err)

	updated, err := uc.Update(ctx, "owner1", profile.ID, BusinessProfileInput{
		Name:         "Aling Rosa Sari-sari",
		Address:      "Sampaloc, Manila",
		ProfileTypes: []string{"store"},
	})
	assert.NoError(t, err)
	if assert.NotNil(t, updated.Location) {
		assert.Equal(t, 14.6010, updated.Location.Lat)
		assert.Equal(t, 120.9850, updated.Location.Lng)
	}
}

func TestCreateProfileRejectsUnknownProfileType(t *testing.T) {
	uc := newTestProfileUseCase(t)

	_, err := uc.Create(context.Background(), "owner1", BusinessProfileInput{
		Name:         "Mystery Shop",
		Address:      "Makati",
		ProfileTypes: []string{"wizard"},
	})
	assert.Error(t, err)
}
