// internal/service/user.go
package service

import (
	"context"

	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/repository"
)

type UserService struct {
	repo repository.UserRepositoryIface
}

func NewUserService(repo repository.UserRepositoryIface) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns inspectors and coordinators newest first. A non-empty
// zone restricts the listing to exact assigned-zone matches.
func (s *UserService) ListUsers(ctx context.Context, zone string) ([]*model.User, error) {
	return s.repo.FindAll(ctx, zone)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
