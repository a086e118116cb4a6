package usecase

import (
	"context"
	"log"
	"math"
	"time"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/infrastructure/ratelimit"
	"hanaplokal/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo     repository.ReviewRepository
	profileRepo    repository.BusinessProfileRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
	rateLimiter    *ratelimit.RateLimiter
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	profileRepo repository.BusinessProfileRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
) *ReviewUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ReviewUseCase{
		reviewRepo:     reviewRepo,
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
		rateLimiter:    rateLimiter,
	}
}

type SubmitReviewInput struct {
	StoreID string
	Rating  int
	Comment string
}

// SubmitReview keeps one review per (store, user): a repeat submission
// updates the existing document instead of creating a second one.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, userID string, input SubmitReviewInput) (*entity.StoreReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	store, err := uc.profileRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID == userID {
		return nil, errors.BadRequest("You cannot review your own store", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.GetByStoreAndUser(ctx, input.StoreID, userID)
	isNew := false
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		isNew = true
		review = &entity.StoreReview{
			StoreID:  input.StoreID,
			UserID:   userID,
			UserName: user.Username,
		}
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	review.UserName = user.Username

	if isNew {
		err = uc.reviewRepo.Create(ctx, review)
	} else {
		err = uc.reviewRepo.Update(ctx, review)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.recomputeStoreRating(ctx, input.StoreID); err != nil {
		log.Printf("SubmitReview Warning: Rating recompute failed for store %s: %v", input.StoreID, err)
	}

	if isNew {
		notifyErr := uc.notificationUC.Notify(ctx, NotifyInput{
			RecipientID: store.OwnerID,
			SenderID:    userID,
			SenderName:  user.Username,
			Type:        entity.NotificationTypeReview,
			Category:    entity.NotificationCategoryStore,
			Data: map[string]interface{}{
				"store_id":  input.StoreID,
				"review_id": review.ID,
				"rating":    input.Rating,
			},
		})
		if notifyErr != nil {
			log.Printf("SubmitReview Warning: Notification to owner %s failed: %v", store.OwnerID, notifyErr)
		}
	}

	return review, nil
}

func (uc *ReviewUseCase) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.StoreReview, int64, error) {
	return uc.reviewRepo.ListByStore(ctx, storeID, limit, offset)
}

func (uc *ReviewUseCase) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return errors.Forbidden("You can only delete your own review", nil)
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	if err := uc.recomputeStoreRating(ctx, review.StoreID); err != nil {
		log.Printf("Delete Review Warning: Rating recompute failed for store %s: %v", review.StoreID, err)
	}

	return nil
}

// recomputeStoreRating rebuilds the denormalized rating and reviewCount from
// the full review set, rounded to two decimals.
func (uc *ReviewUseCase) recomputeStoreRating(ctx context.Context, storeID string) error {
	reviews, total, err := uc.reviewRepo.ListByStore(ctx, storeID, 0, 0)
	if err != nil {
		return err
	}

	var rating float64
	if total > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = math.Round(float64(sum)/float64(total)*100) / 100
	}

	return uc.profileRepo.AdjustCounters(ctx, storeID, rating, int(total), 0)
}

type ReportStoreInput struct {
	StoreID     string
	Reason      string
	Description string
}

func (uc *ReviewUseCase) ReportStore(ctx context.Context, userID string, input ReportStoreInput) (*entity.StoreReport, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "report_store")
	if !allowed {
		return nil, errors.TooManyRequests("Too many reports", waitTime)
	}

	if _, err := uc.profileRepo.GetByID(ctx, input.StoreID); err != nil {
		return nil, err
	}

	report := &entity.StoreReport{
		StoreID:     input.StoreID,
		ReporterID:  userID,
		Reason:      input.Reason,
		Description: input.Description,
	}

	if err := uc.reviewRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (uc *ReviewUseCase) ListReports(ctx context.Context, status string, limit, offset int) ([]*entity.StoreReport, int64, error) {
	return uc.reviewRepo.ListReports(ctx, status, limit, offset)
}

// ResolveReport closes a report and notifies the reporter. Admin only, the
// role check happens in middleware.
func (uc *ReviewUseCase) ResolveReport(ctx context.Context, reportID, resolution string) (*entity.StoreReport, error) {
	if resolution != "resolved" && resolution != "dismissed" {
		return nil, errors.BadRequest("Resolution must be resolved or dismissed", nil)
	}

	report, err := uc.reviewRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != "pending" {
		return nil, errors.Conflict("Report already handled")
	}

	now := time.Now()
	report.Status = resolution
	report.ResolvedAt = &now

	if err := uc.reviewRepo.UpdateReport(ctx, report); err != nil {
		return nil, err
	}

	notifyErr := uc.notificationUC.Notify(ctx, NotifyInput{
		RecipientID: report.ReporterID,
		Type:        entity.NotificationTypeReport,
		Category:    entity.NotificationCategoryActivity,
		Data: map[string]interface{}{
			"report_id": report.ID,
			"status":    report.Status,
		},
	})
	if notifyErr != nil {
		log.Printf("ResolveReport Warning: Notification to %s failed: %v", report.ReporterID, notifyErr)
	}

	return report, nil
}
