package repository

import (
	"context"

	"hanaplokal/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, kind, id string) (*entity.Listing, error)
	ListByStore(ctx context.Context, kind, storeID string) ([]*entity.Listing, error)
	// ListAll returns every listing of a kind; the discovery search scans
	// these in memory.
	ListAll(ctx context.Context, kind string) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, kind, id string) error
	// DeleteByStore removes all listings of every kind belonging to a store.
	// Used by the store-deletion cascade.
	DeleteByStore(ctx context.Context, storeID string) (int, error)
}
