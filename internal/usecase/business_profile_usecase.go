package usecase

import (
	"context"
	"log"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/domain/taxonomy"
	"hanaplokal/pkg/errors"
)

type BusinessProfileUseCase struct {
	profileRepo repository.BusinessProfileRepository
	listingRepo repository.ListingRepository
}

func NewBusinessProfileUseCase(
	profileRepo repository.BusinessProfileRepository,
	listingRepo repository.ListingRepository,
) *BusinessProfileUseCase {
	return &BusinessProfileUseCase{
		profileRepo: profileRepo,
		listingRepo: listingRepo,
	}
}

type BusinessProfileInput struct {
	Name           string
	Description    string
	Address        string
	Location       *entity.GeoPoint
	ProfileTypes   []string
	PrimaryType    string
	Categories     []string
	Hours          map[string]string
	ContactNumbers []entity.ContactNumber
	SocialLinks    []entity.SocialLink
	CoverImage     string
	Images         []string
}

func (uc *BusinessProfileUseCase) Create(ctx context.Context, ownerID string, input BusinessProfileInput) (*entity.BusinessProfile, error) {
	if err := validateProfileTypes(input.ProfileTypes, input.PrimaryType); err != nil {
		return nil, err
	}

	profile := &entity.BusinessProfile{
		OwnerID:        ownerID,
		Name:           input.Name,
		Description:    input.Description,
		Address:        input.Address,
		Location:       input.Location,
		ProfileTypes:   input.ProfileTypes,
		PrimaryType:    input.PrimaryType,
		Categories:     normalizeCategories(input.Categories),
		Hours:          input.Hours,
		ContactNumbers: input.ContactNumbers,
		SocialLinks:    input.SocialLinks,
		CoverImage:     input.CoverImage,
		Images:         input.Images,
		Status:         "active",
	}
	if profile.PrimaryType == "" && len(profile.ProfileTypes) > 0 {
		profile.PrimaryType = profile.ProfileTypes[0]
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *BusinessProfileUseCase) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Status == "deleted" {
		return nil, errors.NotFound("Business profile", nil)
	}

	return profile, nil
}

func (uc *BusinessProfileUseCase) ListMine(ctx context.Context, ownerID string) ([]*entity.BusinessProfile, error) {
	return uc.profileRepo.ListByOwner(ctx, ownerID)
}

func (uc *BusinessProfileUseCase) Update(ctx context.Context, ownerID, id string, input BusinessProfileInput) (*entity.BusinessProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this business profile", nil)
	}

	if err := validateProfileTypes(input.ProfileTypes, input.PrimaryType); err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Description = input.Description
	profile.Address = input.Address
	if input.Location != nil {
		profile.Location = input.Location
	}
	if len(input.ProfileTypes) > 0 {
		profile.ProfileTypes = input.ProfileTypes
	}
	if input.PrimaryType != "" {
		profile.PrimaryType = input.PrimaryType
	}
	profile.Categories = normalizeCategories(input.Categories)
	profile.Hours = input.Hours
	profile.ContactNumbers = input.ContactNumbers
	profile.SocialLinks = input.SocialLinks
	if input.CoverImage != "" {
		profile.CoverImage = input.CoverImage
	}
	profile.Images = input.Images

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Delete removes a profile and cascades into its listings. There is no
// server-side transaction across collections here; listings go first so a
// failure leaves the profile visible rather than orphaning its listings.
func (uc *BusinessProfileUseCase) Delete(ctx context.Context, ownerID, id string) error {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if profile.OwnerID != ownerID {
		return errors.Forbidden("You don't own this business profile", nil)
	}

	deleted, err := uc.listingRepo.DeleteByStore(ctx, id)
	if err != nil {
		log.Printf("Delete Error: Cascade for store %s failed after %d listings: %v", id, deleted, err)
		return err
	}
	if deleted > 0 {
		log.Printf("Deleted %d listings for store %s", deleted, id)
	}

	return uc.profileRepo.Delete(ctx, id)
}

func validateProfileTypes(profileTypes []string, primaryType string) error {
	for _, pt := range profileTypes {
		if !taxonomy.ValidProfileType(pt) {
			return errors.BadRequest("Unknown profile type: "+pt, nil)
		}
	}
	if primaryType != "" && !taxonomy.ValidProfileType(primaryType) {
		return errors.BadRequest("Unknown profile type: "+primaryType, nil)
	}
	return nil
}

// normalizeCategories maps unknown category ids onto the fallback bucket so
// the stored document always matches the taxonomy tables.
func normalizeCategories(categories []string) []string {
	if len(categories) == 0 {
		return categories
	}
	out := make([]string, 0, len(categories))
	seen := make(map[string]bool)
	for _, c := range categories {
		id := taxonomy.CategoryInfo(c).ID
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
