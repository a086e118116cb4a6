package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/pkg/errors"
)

// In-memory repositories backing the usecase tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role string, limit int) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, user)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.BusinessProfile
}

func newFakeProfileRepo(profiles ...*entity.BusinessProfile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[string]*entity.BusinessProfile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.Status == "" {
		profile.Status = "active"
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Business profile", nil)
	}
	return profile, nil
}

func (r *fakeProfileRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.BusinessProfile, error) {
	var out []*entity.BusinessProfile
	for _, profile := range r.profiles {
		if profile.OwnerID == ownerID {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) ListActive(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var out []*entity.BusinessProfile
	for _, profile := range r.profiles {
		if profile.Status == "active" {
			out = append(out, profile)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) AdjustCounters(ctx context.Context, id string, rating float64, reviewCount, listingDelta int) error {
	profile, ok := r.profiles[id]
	if !ok {
		return errors.NotFound("Business profile", nil)
	}
	if reviewCount >= 0 {
		profile.Rating = rating
		profile.ReviewCount = reviewCount
	}
	profile.TotalListings += listingDelta
	return nil
}

type fakeListingRepo struct {
	listings map[string]*entity.Listing
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: make(map[string]*entity.Listing)}
	for _, l := range listings {
		repo.listings[l.Kind+"/"+l.ID] = l
	}
	return repo
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	r.listings[listing.Kind+"/"+listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, kind, id string) (*entity.Listing, error) {
	listing, ok := r.listings[kind+"/"+id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *fakeListingRepo) ListByStore(ctx context.Context, kind, storeID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if listing.Kind == kind && listing.StoreID == storeID {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListAll(ctx context.Context, kind string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if listing.Kind == kind {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.listings[listing.Kind+"/"+listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, kind, id string) error {
	delete(r.listings, kind+"/"+id)
	return nil
}

func (r *fakeListingRepo) DeleteByStore(ctx context.Context, storeID string) (int, error) {
	deleted := 0
	for key, listing := range r.listings {
		if listing.StoreID == storeID {
			delete(r.listings, key)
			deleted++
		}
	}
	return deleted, nil
}

type fakeConversationRepo struct {
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *fakeConversationRepo) GetByParticipantKey(ctx context.Context, key string) (*entity.Conversation, error) {
	for _, conversation := range r.conversations {
		if conversation.ParticipantKey == key {
			return conversation, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeConversationRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	var out []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userID) {
			out = append(out, conversation)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepo) AppendMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) error {
	stored, ok := r.conversations[conversation.ID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages[conversation.ID] = append(r.messages[conversation.ID], message)
	stored.LastMessage = message.Text
	stored.LastMessageAt = message.CreatedAt
	for _, pid := range stored.Participants {
		if pid != message.SenderID {
			stored.UnreadCount[pid]++
		}
	}
	return nil
}

func (r *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	msgs := r.messages[conversationID]
	return msgs, int64(len(msgs)), nil
}

func (r *fakeConversationRepo) ResetUnread(ctx context.Context, conversationID, userID string) error {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UnreadCount[userID] = 0
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*entity.StoreReview
	reports map[string]*entity.StoreReport
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews: make(map[string]*entity.StoreReview),
		reports: make(map[string]*entity.StoreReport),
	}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.StoreReview) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.StoreReview, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (r *fakeReviewRepo) GetByStoreAndUser(ctx context.Context, storeID, userID string) (*entity.StoreReview, error) {
	for _, review := range r.reviews {
		if review.StoreID == storeID && review.UserID == userID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.StoreReview, int64, error) {
	var out []*entity.StoreReview
	for _, review := range r.reviews {
		if review.StoreID == storeID {
			out = append(out, review)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.StoreReview) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) CreateReport(ctx context.Context, report *entity.StoreReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = "pending"
	}
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReviewRepo) GetReportByID(ctx context.Context, id string) (*entity.StoreReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	return report, nil
}

func (r *fakeReviewRepo) ListReports(ctx context.Context, status string, limit, offset int) ([]*entity.StoreReport, int64, error) {
	var out []*entity.StoreReport
	for _, report := range r.reports {
		if status == "" || report.Status == status {
			out = append(out, report)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) UpdateReport(ctx context.Context, report *entity.StoreReport) error {
	r.reports[report.ID] = report
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID, category string, limit, offset int) ([]*entity.Notification, int64, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && (category == "" || n.Category == category) {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]*entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*entity.Favorite)}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, userID, storeID string) (*entity.Favorite, error) {
	favorite := &entity.Favorite{
		ID:        userID + "_" + storeID,
		UserID:    userID,
		StoreID:   storeID,
		CreatedAt: time.Now(),
	}
	r.favorites[favorite.ID] = favorite
	return favorite, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, storeID string) error {
	delete(r.favorites, userID+"_"+storeID)
	return nil
}

func (r *fakeFavoriteRepo) IsFavorite(ctx context.Context, userID, storeID string) (bool, error) {
	_, ok := r.favorites[userID+"_"+storeID]
	return ok, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithStore, int64, error) {
	var out []entity.FavoriteWithStore
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			out = append(out, entity.FavoriteWithStore{Favorite: *favorite})
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeFavoriteRepo) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			count++
		}
	}
	return count, nil
}

func newTestNotificationUseCase(userRepo *fakeUserRepo) (*NotificationUseCase, *fakeNotificationRepo) {
	notificationRepo := &fakeNotificationRepo{}
	return NewNotificationUseCase(notificationRepo, userRepo, nil), notificationRepo
}
