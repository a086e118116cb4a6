package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func newTestFavoriteUseCase(t *testing.T) (*FavoriteUseCase, *fakeNotificationRepo) {
	t.Helper()

	userRepo := newFakeUserRepo(
		&entity.User{ID: "owner", Username: "Aling Nena", Language: "en"},
		&entity.User{ID: "fan", Username: "Paolo", Language: "en"},
	)
	profileRepo := newFakeProfileRepo(&entity.BusinessProfile{
		ID:      "store1",
		OwnerID: "owner",
		Name:    "Nena's Sari-Sari",
		Status:  "active",
	})
	favoriteRepo := newFakeFavoriteRepo()
	notificationUC, notificationRepo := newTestNotificationUseCase(userRepo)

	return NewFavoriteUseCase(favoriteRepo, profileRepo, userRepo, notificationUC), notificationRepo
}

func TestAddFavoriteRejectsOwnStore(t *testing.T) {
	uc, _ := newTestFavoriteUseCase(t)

	_, err := uc.Add(context.Background(), "owner", "store1")
	assert.Error(t, err)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	uc, notificationRepo := newTestFavoriteUseCase(t)
	ctx := context.Background()

	first, err := uc.Add(ctx, "fan", "store1")
	assert.NoError(t, err)

	second, err := uc.Add(ctx, "fan", "store1")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := uc.favoriteRepo.Count(ctx, "fan")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The owner hears about the first add only.
	notifications, _, err := notificationRepo.ListByRecipient(ctx, "owner", "", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeFavorite, notifications[0].Type)
}

func TestRemoveFavorite(t *testing.T) {
	uc, _ := newTestFavoriteUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "fan", "store1")
	assert.NoError(t, err)

	assert.NoError(t, uc.Remove(ctx, "fan", "store1"))

	isFavorite, err := uc.IsFavorite(ctx, "fan", "store1")
	assert.NoError(t, err)
	assert.False(t, isFavorite)
}
