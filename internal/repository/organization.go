// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/model"
)

type OrganizationRepositoryIface interface {
	FindActive(ctx context.Context) ([]model.OrganizationSummary, error)
	FindByID(ctx context.Context, id string) (*model.Organization, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// FindActive returns active organizations ordered alphabetically.
func (r *OrganizationRepository) FindActive(ctx context.Context) ([]model.OrganizationSummary, error) {
	var orgs []model.OrganizationSummary
	err := r.db.WithContext(ctx).
		Model(&model.Organization{}).
		Select("id, name, status").
		Where("status = ?", model.OrgStatusActiva).
		Order("name ASC").
		Scan(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("listing active organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		if notFoundErr := notFound(err, domain.ErrOrganizationNotFound); notFoundErr != nil {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}
