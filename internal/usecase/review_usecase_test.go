package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/domain/entity"
)

func newTestReviewUseCase(t *testing.T) (*ReviewUseCase, *fakeReviewRepo, *fakeProfileRepo) {
	t.Helper()

	userRepo := newFakeUserRepo(
		&entity.User{ID: "owner", Username: "Aling Nena", Language: "fil"},
		&entity.User{ID: "buyer", Username: "Marco", Language: "en"},
		&entity.User{ID: "buyer2", Username: "Liza", Language: "en"},
	)
	profileRepo := newFakeProfileRepo(&entity.BusinessProfile{
		ID:      "store1",
		OwnerID: "owner",
		Name:    "Nena's Sari-Sari",
		Status:  "active",
	})
	reviewRepo := newFakeReviewRepo()
	notificationUC, _ := newTestNotificationUseCase(userRepo)

	return NewReviewUseCase(reviewRepo, profileRepo, userRepo, notificationUC), reviewRepo, profileRepo
}

func TestSubmitReviewUpdatesInsteadOfDuplicating(t *testing.T) {
	uc, reviewRepo, _ := newTestReviewUseCase(t)
	ctx := context.Background()

	first, err := uc.SubmitReview(ctx, "buyer", SubmitReviewInput{StoreID: "store1", Rating: 5, Comment: "sulit"})
	assert.NoError(t, err)

	second, err := uc.SubmitReview(ctx, "buyer", SubmitReviewInput{StoreID: "store1", Rating: 3, Comment: "medyo mahal na"})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, reviewRepo.reviews, 1)
	assert.Equal(t, 3, reviewRepo.reviews[first.ID].Rating)
	assert.Equal(t, "medyo mahal na", reviewRepo.reviews[first.ID].Comment)
}

func TestSubmitReviewRecomputesStoreRating(t *testing.T) {
	uc, _, profileRepo := newTestReviewUseCase(t)
	ctx := context.Background()

	_, err := uc.SubmitReview(ctx, "buyer", SubmitReviewInput{StoreID: "store1", Rating: 5})
	assert.NoError(t, err)
	_, err = uc.SubmitReview(ctx, "buyer2", SubmitReviewInput{StoreID: "store1", Rating: 2})
	assert.NoError(t, err)

	store, err := profileRepo.GetByID(ctx, "store1")
	assert.NoError(t, err)
	assert.Equal(t, 2, store.ReviewCount)
	assert.InDelta(t, 3.5, store.Rating, 0.001)
}

func TestSubmitReviewRejectsOwnStore(t *testing.T) {
	uc, _, _ := newTestReviewUseCase(t)

	_, err := uc.SubmitReview(context.Background(), "owner", SubmitReviewInput{StoreID: "store1", Rating: 5})
	assert.Error(t, err)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	uc, _, _ := newTestReviewUseCase(t)

	_, err := uc.SubmitReview(context.Background(), "buyer", SubmitReviewInput{StoreID: "store1", Rating: 6})
	assert.Error(t, err)
	_, err = uc.SubmitReview(context.Background(), "buyer", SubmitReviewInput{StoreID: "store1", Rating: 0})
	assert.Error(t, err)
}

func TestDeleteReviewRecomputesRating(t *testing.T) {
	uc, _, profileRepo := newTestReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.SubmitReview(ctx, "buyer", SubmitReviewInput{StoreID: "store1", Rating: 5})
	assert.NoError(t, err)
	_, err = uc.SubmitReview(ctx, "buyer2", SubmitReviewInput{StoreID: "store1", Rating: 1})
	assert.NoError(t, err)

	assert.NoError(t, uc.Delete(ctx, "buyer", review.ID))

	store, _ := profileRepo.GetByID(ctx, "store1")
	assert.Equal(t, 1, store.ReviewCount)
	assert.InDelta(t, 1.0, store.Rating, 0.001)
}

func TestResolveReportOnlyOnce(t *testing.T) {
	uc, _, _ := newTestReviewUseCase(t)
	ctx := context.Background()

	report, err := uc.ReportStore(ctx, "buyer", ReportStoreInput{StoreID: "store1", Reason: "scam"})
	assert.NoError(t, err)
	assert.Equal(t, "pending", report.Status)

	resolved, err := uc.ResolveReport(ctx, report.ID, "resolved")
	assert.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	_, err = uc.ResolveReport(ctx, report.ID, "dismissed")
	assert.Error(t, err)
}
