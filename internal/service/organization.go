// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/repository"
)

const activeOrgsCacheKey = "organizations:active"

type OrganizationService struct {
	repo  repository.OrganizationRepositoryIface
	cache *CacheService
}

func NewOrganizationService(repo repository.OrganizationRepositoryIface, cache *CacheService) *OrganizationService {
	return &OrganizationService{
		repo:  repo,
		cache: cache,
	}
}

// ListActive returns active organizations ordered by name. The listing is
// read-heavy and changes out-of-band only, so it is served through the cache.
func (s *OrganizationService) ListActive(ctx context.Context) ([]model.OrganizationSummary, error) {
	if s.cache != nil {
		var cached []model.OrganizationSummary
		err := s.cache.Get(ctx, activeOrgsCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("reading organization cache", "error", err)
		}
	}

	orgs, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activeOrgsCacheKey, orgs); err != nil {
			slog.Warn("writing organization cache", "error", err)
		}
	}

	return orgs, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, id string) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}
