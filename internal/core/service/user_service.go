package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// UserService exposes read-only user lookups for the HTTP surface.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetAllUsers returns a page of password-free user projections.
func (s *UserService) GetAllUsers(ctx context.Context, skip, limit int) (*domain.Page[domain.User], error) {
	page, err := s.users.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		page.Data[i].Password = ""
	}
	return page, nil
}

// GetUserByID returns the projection for one user, or a 404 naming the id.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NotFound(fmt.Sprintf("User with ID %s not found", id))
		}
		return nil, err
	}
	return user.Public(), nil
}
