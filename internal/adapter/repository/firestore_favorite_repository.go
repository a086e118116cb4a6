package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

// favoriteDocID is deterministic so adding the same store twice overwrites
// the same document instead of duplicating it.
func favoriteDocID(userID, storeID string) string {
	return userID + "_" + storeID
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, storeID string) (*entity.Favorite, error) {
	favorite := &entity.Favorite{
		ID:        favoriteDocID(userID, storeID),
		UserID:    userID,
		StoreID:   storeID,
		CreatedAt: time.Now(),
	}

	_, err := r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, storeID string) error {
	_, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, storeID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) IsFavorite(ctx context.Context, userID, storeID string) (bool, error) {
	_, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, storeID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return true, nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithStore, int64, error) {
	query := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch favorites", err)
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

	var favorites []entity.FavoriteWithStore
	for i := start; i < end; i++ {
		var favorite entity.Favorite
		if err := allDocs[i].DataTo(&favorite); err != nil {
			log.Printf("Skipping malformed favorite %s: %v", allDocs[i].Ref.ID, err)
			continue
		}
		favorite.ID = allDocs[i].Ref.ID

		item := entity.FavoriteWithStore{Favorite: favorite}

		// Favorited stores can disappear; the favorite row survives with a
		// nil store so the client can prune it.
		storeDoc, err := r.client.Collection("businessProfiles").Doc(favorite.StoreID).Get(ctx)
		if err == nil {
			if store, parseErr := parseProfileDoc(storeDoc); parseErr == nil && store.Status == "active" {
				item.Store = store
			}
		} else if status.Code(err) != codes.NotFound {
			log.Printf("Failed to load store %s for favorite %s: %v", favorite.StoreID, favorite.ID, err)
		}

		favorites = append(favorites, item)
	}

	return favorites, total, nil
}

func (r *firestoreFavoriteRepository) Count(ctx context.Context, userID string) (int64, error) {
	iter := r.client.Collection("favorites").Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var count int64
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Internal("Failed to count favorites", err)
		}
		count++
	}

	return count, nil
}
