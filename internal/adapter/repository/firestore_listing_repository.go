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

// Each listing kind keeps its own top-level collection, matching the
// original document layout.
var listingCollections = map[string]string{
	entity.ListingKindProduct:   "products",
	entity.ListingKindService:   "services",
	entity.ListingKindBooking:   "bookings",
	entity.ListingKindLabor:     "labors",
	entity.ListingKindPortfolio: "portfolio",
}

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) collection(kind string) (string, error) {
	name, ok := listingCollections[kind]
	if !ok {
		return "", errors.BadRequest("Unknown listing kind", nil)
	}
	return name, nil
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	coll, err := r.collection(listing.Kind)
	if err != nil {
		return err
	}

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	_, err = r.client.Collection(coll).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, kind, id string) (*entity.Listing, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	doc, err := r.client.Collection(coll).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	listing.ID = doc.Ref.ID
	listing.Kind = kind

	return &listing, nil
}

func (r *firestoreListingRepository) ListByStore(ctx context.Context, kind, storeID string) ([]*entity.Listing, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	query := r.client.Collection(coll).Where("storeId", "==", storeID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query listings by store", err)
	}

	return decodeListingDocs(docs, kind), nil
}

func (r *firestoreListingRepository) ListAll(ctx context.Context, kind string) ([]*entity.Listing, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	docs, err := r.client.Collection(coll).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch listings", err)
	}

	return decodeListingDocs(docs, kind), nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	coll, err := r.collection(listing.Kind)
	if err != nil {
		return err
	}

	listing.UpdatedAt = time.Now()

	_, err = r.client.Collection(coll).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, kind, id string) error {
	coll, err := r.collection(kind)
	if err != nil {
		return err
	}

	_, err = r.client.Collection(coll).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) DeleteByStore(ctx context.Context, storeID string) (int, error) {
	deleted := 0

	for kind, coll := range listingCollections {
		docs, err := r.client.Collection(coll).Where("storeId", "==", storeID).Documents(ctx).GetAll()
		if err != nil {
			return deleted, errors.Internal("Failed to query listings for cascade delete", err)
		}

		for _, doc := range docs {
			if _, err := doc.Ref.Delete(ctx); err != nil {
				log.Printf("Cascade delete: failed to delete %s listing %s for store %s: %v", kind, doc.Ref.ID, storeID, err)
				return deleted, errors.Internal("Failed to delete listing during cascade", err)
			}
			deleted++
		}
	}

	return deleted, nil
}

func decodeListingDocs(docs []*firestore.DocumentSnapshot, kind string) []*entity.Listing {
	var listings []*entity.Listing
	for _, doc := range docs {
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			log.Printf("Skipping malformed listing %s: %v", doc.Ref.ID, err)
			continue
		}
		listing.ID = doc.Ref.ID
		listing.Kind = kind
		listings = append(listings, &listing)
	}
	return listings
}
