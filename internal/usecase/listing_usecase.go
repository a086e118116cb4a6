package usecase

import (
	"context"
	"log"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/domain/taxonomy"
	"hanaplokal/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	profileRepo repository.BusinessProfileRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	profileRepo repository.BusinessProfileRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
	}
}

type ListingInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
	Category    string
	Images      []string
	Available   *bool
}

func (uc *ListingUseCase) Create(ctx context.Context, ownerID, storeID, kind string, input ListingInput) (*entity.Listing, error) {
	if !entity.ValidListingKind(kind) {
		return nil, errors.BadRequest("Unknown listing kind", nil)
	}

	profile, err := uc.profileRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this business profile", nil)
	}
	if !kindAllowedForProfile(profile, kind) {
		return nil, errors.BadRequest("Listing kind not available for this profile type", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}

	listing := &entity.Listing{
		StoreID:     storeID,
		Kind:        kind,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Unit:        input.Unit,
		Category:    taxonomy.CategoryInfo(input.Category).ID,
		Images:      input.Images,
		Available:   true,
	}
	if input.Available != nil {
		listing.Available = *input.Available
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.AdjustCounters(ctx, storeID, 0, -1, 1); err != nil {
		log.Printf("Create Listing Warning: totalListings bump failed for store %s: %v", storeID, err)
	}

	return listing, nil
}

func (uc *ListingUseCase) GetByID(ctx context.Context, kind, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, kind, id)
}

func (uc *ListingUseCase) ListByStore(ctx context.Context, kind, storeID string) ([]*entity.Listing, error) {
	if !entity.ValidListingKind(kind) {
		return nil, errors.BadRequest("Unknown listing kind", nil)
	}
	return uc.listingRepo.ListByStore(ctx, kind, storeID)
}

func (uc *ListingUseCase) Update(ctx context.Context, ownerID, kind, id string, input ListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(ctx, ownerID, listing.StoreID); err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}

	listing.Name = input.Name
	listing.Description = input.Description
	listing.Price = input.Price
	listing.Unit = input.Unit
	if input.Category != "" {
		listing.Category = taxonomy.CategoryInfo(input.Category).ID
	}
	listing.Images = input.Images
	if input.Available != nil {
		listing.Available = *input.Available
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, ownerID, kind, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	if err := uc.checkOwnership(ctx, ownerID, listing.StoreID); err != nil {
		return err
	}

	if err := uc.listingRepo.Delete(ctx, kind, id); err != nil {
		return err
	}

	if err := uc.profileRepo.AdjustCounters(ctx, listing.StoreID, 0, -1, -1); err != nil {
		log.Printf("Delete Listing Warning: totalListings decrement failed for store %s: %v", listing.StoreID, err)
	}

	return nil
}

func (uc *ListingUseCase) checkOwnership(ctx context.Context, ownerID, storeID string) error {
	profile, err := uc.profileRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if profile.OwnerID != ownerID {
		return errors.Forbidden("You don't own this business profile", nil)
	}
	return nil
}

func kindAllowedForProfile(profile *entity.BusinessProfile, kind string) bool {
	for _, pt := range profile.ProfileTypes {
		for _, allowed := range taxonomy.ListingKindsForProfileType(pt) {
			if allowed == kind {
				return true
			}
		}
	}
	return false
}
