package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UserService exposes read operations over registered users.
type UserService interface {
	GetAllUsers(ctx context.Context, skip, limit int) (*domain.Page[domain.User], error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
