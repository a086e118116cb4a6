package usecase

import (
	"context"
	"log"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
)

type FavoriteUseCase struct {
	favoriteRepo   repository.FavoriteRepository
	profileRepo    repository.BusinessProfileRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	profileRepo repository.BusinessProfileRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo:   favoriteRepo,
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, storeID string) (*entity.Favorite, error) {
	store, err := uc.profileRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID == userID {
		return nil, errors.BadRequest("You cannot favorite your own store", nil)
	}

	already, err := uc.favoriteRepo.IsFavorite(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	favorite, err := uc.favoriteRepo.Add(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	// Notify the owner only on the first add, re-favoriting is silent.
	if !already {
		user, userErr := uc.userRepo.GetByID(ctx, userID)
		senderName := ""
		if userErr == nil {
			senderName = user.Username
		}
		notifyErr := uc.notificationUC.Notify(ctx, NotifyInput{
			RecipientID: store.OwnerID,
			SenderID:    userID,
			SenderName:  senderName,
			Type:        entity.NotificationTypeFavorite,
			Category:    entity.NotificationCategoryStore,
			Data: map[string]interface{}{
				"store_id": storeID,
			},
		})
		if notifyErr != nil {
			log.Printf("Add Favorite Warning: Notification to owner %s failed: %v", store.OwnerID, notifyErr)
		}
	}

	return favorite, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, storeID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, storeID)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, storeID string) (bool, error) {
	return uc.favoriteRepo.IsFavorite(ctx, userID, storeID)
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithStore, int64, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID, limit, offset)
}
