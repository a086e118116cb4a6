package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
)

type firestoreBusinessProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreBusinessProfileRepository(client *firestore.Client) repository.BusinessProfileRepository {
	return &firestoreBusinessProfileRepository{
		client: client,
	}
}

func (r *firestoreBusinessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Status == "" {
		profile.Status = "active"
	}

	_, err := r.client.Collection("businessProfiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create business profile", err)
	}

	return nil
}

func (r *firestoreBusinessProfileRepository) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	doc, err := r.client.Collection("businessProfiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Business profile", err)
		}
		return nil, errors.Internal("Failed to get business profile", err)
	}

	return parseProfileDoc(doc)
}

func (r *firestoreBusinessProfileRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.BusinessProfile, error) {
	query := r.client.Collection("businessProfiles").Where("ownerId", "==", ownerID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query business profiles by owner", err)
	}

	var profiles []*entity.BusinessProfile
	for _, doc := range docs {
		profile, err := parseProfileDoc(doc)
		if err != nil {
			log.Printf("Skipping malformed business profile %s: %v", doc.Ref.ID, err)
			continue
		}
		if profile.Status == "deleted" {
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *firestoreBusinessProfileRepository) ListActive(ctx context.Context) ([]*entity.BusinessProfile, error) {
	query := r.client.Collection("businessProfiles").Where("status", "==", "active")

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch business profiles", err)
	}

	var profiles []*entity.BusinessProfile
	for _, doc := range docs {
		profile, err := parseProfileDoc(doc)
		if err != nil {
			log.Printf("Skipping malformed business profile %s: %v", doc.Ref.ID, err)
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *firestoreBusinessProfileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection("businessProfiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to update business profile", err)
	}

	return nil
}

func (r *firestoreBusinessProfileRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("businessProfiles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete business profile", err)
	}

	return nil
}

func (r *firestoreBusinessProfileRepository) AdjustCounters(ctx context.Context, id string, rating float64, reviewCount, listingDelta int) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	if reviewCount >= 0 {
		updates = append(updates,
			firestore.Update{Path: "rating", Value: rating},
			firestore.Update{Path: "reviewCount", Value: reviewCount},
		)
	}
	if listingDelta != 0 {
		updates = append(updates, firestore.Update{Path: "totalListings", Value: firestore.Increment(listingDelta)})
	}

	_, err := r.client.Collection("businessProfiles").Doc(id).Update(ctx, updates)
	if err != nil {
		return errors.Internal("Failed to update business profile counters", err)
	}

	return nil
}

// parseProfileDoc decodes a profile document and normalizes the legacy type
// fields. Old documents carried a single "profileType" string (and some only
// "primaryType"); every read funnels through here so the rest of the code
// only ever sees profileTypes[] plus primaryType.
func parseProfileDoc(doc *firestore.DocumentSnapshot) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse business profile data", err)
	}
	profile.ID = doc.Ref.ID

	if len(profile.ProfileTypes) == 0 {
		raw := doc.Data()
		if legacy, ok := raw["profileType"].(string); ok && legacy != "" {
			profile.ProfileTypes = []string{legacy}
		} else if profile.PrimaryType != "" {
			profile.ProfileTypes = []string{profile.PrimaryType}
		}
	}
	if profile.PrimaryType == "" && len(profile.ProfileTypes) > 0 {
		profile.PrimaryType = profile.ProfileTypes[0]
	}

	return &profile, nil
}
