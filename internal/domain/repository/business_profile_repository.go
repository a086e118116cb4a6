package repository

import (
	"context"

	"hanaplokal/internal/domain/entity"
)

type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.BusinessProfile, error)
	// ListActive returns every active profile; the discovery flow filters
	// in memory by distance and taxonomy.
	ListActive(ctx context.Context) ([]*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
	Delete(ctx context.Context, id string) error
	AdjustCounters(ctx context.Context, id string, rating float64, reviewCount, listingDelta int) error
}
