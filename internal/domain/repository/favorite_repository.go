package repository

import (
	"context"

	"hanaplokal/internal/domain/entity"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, storeID string) (*entity.Favorite, error)
	Remove(ctx context.Context, userID, storeID string) error
	IsFavorite(ctx context.Context, userID, storeID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithStore, int64, error)
	Count(ctx context.Context, userID string) (int64, error)
}
