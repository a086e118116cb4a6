package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/geo"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
)

type DiscoveryUseCase struct {
	profileRepo repository.BusinessProfileRepository
	listingRepo repository.ListingRepository
}

func NewDiscoveryUseCase(
	profileRepo repository.BusinessProfileRepository,
	listingRepo repository.ListingRepository,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		profileRepo: profileRepo,
		listingRepo: listingRepo,
	}
}

type DiscoverInput struct {
	Lat         float64
	Lng         float64
	RadiusKm    float64
	Category    string
	ProfileType string
	Query       string
	Limit       int
	Offset      int
}

// StoreResult is a profile annotated with its distance from the caller.
// DistanceKm is -1 when either side has no coordinates.
type StoreResult struct {
	*entity.BusinessProfile
	DistanceKm float64 `json:"distance_km"`
}

// Discover runs the home feed: fetch active stores, annotate with Haversine
// distance, filter, sort nearest first. The whole active set is scanned in
// memory; at the expected store counts this beats maintaining a geo index.
func (uc *DiscoveryUseCase) Discover(ctx context.Context, input DiscoverInput) ([]*StoreResult, int64, error) {
	if input.RadiusKm != 0 && !geo.ValidRadius(input.RadiusKm) {
		return nil, 0, errors.BadRequest("Unsupported search radius", nil)
	}
	radius := input.RadiusKm
	if radius == 0 {
		radius = geo.NoLimit
	}

	profiles, err := uc.profileRepo.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	hasOrigin := input.Lat != 0 || input.Lng != 0

	var matchingStores map[string]bool
	if input.Query != "" {
		matchingStores, err = uc.searchListings(ctx, input.Query)
		if err != nil {
			return nil, 0, err
		}
	}

	var results []*StoreResult
	for _, profile := range profiles {
		if input.Category != "" && !containsString(profile.Categories, input.Category) {
			continue
		}
		if input.ProfileType != "" && !containsString(profile.ProfileTypes, input.ProfileType) {
			continue
		}
		if input.Query != "" && !uc.matchesQuery(profile, input.Query, matchingStores) {
			continue
		}

		distance := -1.0
		if hasOrigin && profile.Location != nil {
			distance = geo.DistanceKm(input.Lat, input.Lng, profile.Location.Lat, profile.Location.Lng)
			if !geo.WithinRadius(distance, radius) {
				continue
			}
		}

		results = append(results, &StoreResult{BusinessProfile: profile, DistanceKm: distance})
	}

	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].DistanceKm, results[j].DistanceKm
		if di < 0 {
			return false
		}
		if dj < 0 {
			return true
		}
		return di < dj
	})

	total := int64(len(results))
	start := input.Offset
	if start > len(results) {
		start = len(results)
	}
	end := len(results)
	if input.Limit > 0 && start+input.Limit < end {
		end = start + input.Limit
	}

	return results[start:end], total, nil
}

// searchListings returns the set of store ids that have a listing whose name
// or description contains the query.
func (uc *DiscoveryUseCase) searchListings(ctx context.Context, query string) (map[string]bool, error) {
	needle := strings.ToLower(query)
	stores := make(map[string]bool)

	for _, kind := range entity.ListingKinds() {
		listings, err := uc.listingRepo.ListAll(ctx, kind)
		if err != nil {
			log.Printf("Discover Warning: Failed to scan %s listings: %v", kind, err)
			continue
		}
		for _, listing := range listings {
			if !listing.Available {
				continue
			}
			if strings.Contains(strings.ToLower(listing.Name), needle) ||
				strings.Contains(strings.ToLower(listing.Description), needle) {
				stores[listing.StoreID] = true
			}
		}
	}

	return stores, nil
}

func (uc *DiscoveryUseCase) matchesQuery(profile *entity.BusinessProfile, query string, matchingStores map[string]bool) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(profile.Name), needle) ||
		strings.Contains(strings.ToLower(profile.Description), needle) {
		return true
	}
	return matchingStores[profile.ID]
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
