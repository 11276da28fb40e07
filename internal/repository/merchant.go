// internal/repository/merchant.go
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/metrics"
	"github.com/sirecovip/backend/internal/model"
)

type MerchantRepositoryIface interface {
	Create(ctx context.Context, merchant *model.Merchant) error
	FindByID(ctx context.Context, id string) (*model.Merchant, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Merchant, error)
	Update(ctx context.Context, merchant *model.Merchant) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	CountByDelegation(ctx context.Context) ([]model.DelegationCount, error)
}

type MerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

func (r *MerchantRepository) Create(ctx context.Context, merchant *model.Merchant) error {
	defer metrics.TrackDBOperation("create_merchant")(time.Now())

	if err := r.db.WithContext(ctx).Create(merchant).Error; err != nil {
		return fmt.Errorf("creating merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepository) FindByID(ctx context.Context, id string) (*model.Merchant, error) {
	var merchant model.Merchant
	err := r.db.WithContext(ctx).Preload("Organization").First(&merchant, "id = ?", id).Error
	if err != nil {
		if notFoundErr := notFound(err, domain.ErrMerchantNotFound); notFoundErr != nil {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("finding merchant: %w", err)
	}
	return &merchant, nil
}

// FindRecent returns the newest merchants first, capped at limit.
func (r *MerchantRepository) FindRecent(ctx context.Context, limit int) ([]*model.Merchant, error) {
	defer metrics.TrackDBOperation("list_merchants")(time.Now())

	var merchants []*model.Merchant
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Order("created_at DESC").
		Limit(limit).
		Find(&merchants).Error
	if err != nil {
		return nil, fmt.Errorf("listing merchants: %w", err)
	}
	return merchants, nil
}

// Update writes the merchant row only. The organizations table is managed
// out-of-band, so association writes are omitted.
func (r *MerchantRepository) Update(ctx context.Context, merchant *model.Merchant) error {
	defer metrics.TrackDBOperation("update_merchant")(time.Now())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(merchant).Error; err != nil {
		return fmt.Errorf("updating merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Merchant{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting merchants: %w", err)
	}
	return count, nil
}

func (r *MerchantRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	var counts []model.StatusCount
	err := r.db.WithContext(ctx).
		Model(&model.Merchant{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting merchants by status: %w", err)
	}
	return counts, nil
}

func (r *MerchantRepository) CountByDelegation(ctx context.Context) ([]model.DelegationCount, error) {
	var counts []model.DelegationCount
	err := r.db.WithContext(ctx).
		Model(&model.Merchant{}).
		Select("delegation, count(*) as count").
		Group("delegation").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting merchants by delegation: %w", err)
	}
	return counts, nil
}
