package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.StoreReview) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.client.Collection("storeReviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.StoreReview, error) {
	doc, err := r.client.Collection("storeReviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	var review entity.StoreReview
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	review.ID = doc.Ref.ID

	return &review, nil
}

func (r *firestoreReviewRepository) GetByStoreAndUser(ctx context.Context, storeID, userID string) (*entity.StoreReview, error) {
	query := r.client.Collection("storeReviews").
		Where("storeId", "==", storeID).
		Where("userId", "==", userID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Review", nil)
		}
		return nil, errors.Internal("Failed to query review by store and user", err)
	}

	var review entity.StoreReview
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	review.ID = doc.Ref.ID

	return &review, nil
}

func (r *firestoreReviewRepository) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.StoreReview, int64, error) {
	query := r.client.Collection("storeReviews").
		Where("storeId", "==", storeID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch reviews", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var reviews []*entity.StoreReview
	for i := start; i < end; i++ {
		var review entity.StoreReview
		if err := allDocs[i].DataTo(&review); err != nil {
			log.Printf("Skipping malformed review %s: %v", allDocs[i].Ref.ID, err)
			continue
		}
		review.ID = allDocs[i].Ref.ID
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.StoreReview) error {
	review.UpdatedAt = time.Now()

	_, err := r.client.Collection("storeReviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to update review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("storeReviews").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) CreateReport(ctx context.Context, report *entity.StoreReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = "pending"
	}
	report.CreatedAt = time.Now()

	_, err := r.client.Collection("storeReports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetReportByID(ctx context.Context, id string) (*entity.StoreReport, error) {
	doc, err := r.client.Collection("storeReports").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.StoreReport
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}
	report.ID = doc.Ref.ID

	return &report, nil
}

func (r *firestoreReviewRepository) ListReports(ctx context.Context, reportStatus string, limit, offset int) ([]*entity.StoreReport, int64, error) {
	query := r.client.Collection("storeReports").Query
	if reportStatus != "" {
		query = query.Where("status", "==", reportStatus)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch reports", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var reports []*entity.StoreReport
	for i := start; i < end; i++ {
		var report entity.StoreReport
		if err := allDocs[i].DataTo(&report); err != nil {
			log.Printf("Skipping malformed report %s: %v", allDocs[i].Ref.ID, err)
			continue
		}
		report.ID = allDocs[i].Ref.ID
		reports = append(reports, &report)
	}

	return reports, total, nil
}

func (r *firestoreReviewRepository) UpdateReport(ctx context.Context, report *entity.StoreReport) error {
	_, err := r.client.Collection("storeReports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to update report", err)
	}

	return nil
}
