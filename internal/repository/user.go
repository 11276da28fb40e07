// internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/model"
)

type UserRepositoryIface interface {
	FindAll(ctx context.Context, zone string) ([]*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll returns users newest first, optionally filtered by exact zone match.
func (r *UserRepository) FindAll(ctx context.Context, zone string) ([]*model.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})
	if zone != "" {
		query = query.Where("assigned_zone = ?", zone)
	}

	var users []*model.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if notFoundErr := notFound(err, domain.ErrUserNotFound); notFoundErr != nil {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("listing users by role: %w", err)
	}
	return users, nil
}
