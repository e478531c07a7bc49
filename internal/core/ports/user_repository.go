package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UserRepository defines the persistence surface for user documents.
// Lookups that find nothing return domain.ErrUserNotFound.
type UserRepository interface {
	// FindByID resolves a user by its document id.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByUsernameOrEmail matches value against either the username or
	// the email of a stored user. Used by login.
	FindByUsernameOrEmail(ctx context.Context, value string) (*domain.User, error)

	// FindByUsernameAndEmail is the registration duplicate probe: it matches
	// when the username is taken OR, if email is non-empty, when the email
	// is taken.
	FindByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindAll returns a page of users ordered by creation time.
	FindAll(ctx context.Context, skip, limit int) (*domain.Page[domain.User], error)

	// Create inserts a new user. A unique-index violation surfaces as
	// domain.ErrDuplicateUser.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Update replaces the stored document and refreshes updated_at.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// Delete removes a user by id.
	Delete(ctx context.Context, id string) error
}
