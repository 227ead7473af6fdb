package services

import (
	"context"

	"github.com/vendormax/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdatePermissions(ctx context.Context, id int, permissions types.Permissions) (types.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// Create persists a new user. Permission flags are forced to their all-false
// default regardless of what the caller supplies; they are granted only
// through UpdatePermissions.
func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	user.Permissions = types.Permissions{}
	return s.repo.Create(ctx, user)
}

func (s *UserService) UpdatePermissions(ctx context.Context, id int, permissions types.Permissions) (types.User, error) {
	return s.repo.UpdatePermissions(ctx, id, permissions)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
