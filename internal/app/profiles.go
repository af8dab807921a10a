package app

import (
	"context"

	"scanenv/internal/types"
)

// ListProfiles returns the closed profile enumeration with per-platform
// dependency counts.
func (s Service) ListProfiles(platform types.PlatformTag) ProfilesResult {
	var result ProfilesResult
	for _, profile := range s.Registry.Profiles() {
		names, err := s.Registry.Resolve(profile.ID, platform)
		if err != nil {
			// Profiles() only yields registered IDs.
			continue
		}
		result.Profiles = append(result.Profiles, ProfileSummary{
			ID:           profile.ID,
			Description:  profile.Description,
			Dependencies: len(names),
		})
	}
	return result
}

// InspectCatalog returns the effective catalog entries, optionally running
// validation first.
func (s Service) InspectCatalog(ctx context.Context, req CatalogRequest) (CatalogResult, error) {
	cat, err := s.effectiveCatalog(req.CatalogPath)
	if err != nil {
		return CatalogResult{}, err
	}
	if req.Validate {
		if err := cat.Validate(ctx); err != nil {
			return CatalogResult{}, err
		}
	}
	var result CatalogResult
	for _, name := range cat.Names() {
		entry, err := cat.Lookup(name)
		if err != nil {
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}
