package repository

import (
	"context"

	"hanaplokal/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.StoreReview) error
	GetByID(ctx context.Context, id string) (*entity.StoreReview, error)
	// GetByStoreAndUser backs the one-review-per-user rule: a second
	// submission from the same user updates the document this returns.
	GetByStoreAndUser(ctx context.Context, storeID, userID string) (*entity.StoreReview, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.StoreReview, int64, error)
	Update(ctx context.Context, review *entity.StoreReview) error
	Delete(ctx context.Context, id string) error

	// Report methods
	CreateReport(ctx context.Context, report *entity.StoreReport) error
	GetReportByID(ctx context.Context, id string) (*entity.StoreReport, error)
	ListReports(ctx context.Context, status string, limit, offset int) ([]*entity.StoreReport, int64, error)
	UpdateReport(ctx context.Context, report *entity.StoreReport) error
}
