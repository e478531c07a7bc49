package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

var emailValidator = validator.New()

// AuthService implements registration and login on top of the user
// repository and the token codec.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenCodec
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenCodec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new USER-role account. The email, when present, is
// normalized and validated before any persistence happens. A registration
// collides when either the username or the email is already taken.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.BadRequest("Username and password are required")
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByUsernameAndEmail(ctx, in.Username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Password:  hash,
		Name:      in.Name,
		Email:     email,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// Login resolves the user by username or email, checks the password, and
// issues a bearer token with the configured lifetime. Both an unknown
// identity and a wrong password come back as 401; password-check internals
// never escalate to a 500.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*ports.TokenResponse, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.Unauthorized("Incorrect username")
		}
		return nil, err
	}

	if !CheckPassword(password, user.Password) {
		return nil, domain.Unauthorized("Incorrect password")
	}

	token, err := s.tokens.Issue(user.ID, user.Email, s.tokens.DefaultTTL())
	if err != nil {
		return nil, err
	}

	return &ports.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// normalizeEmail trims and lowercases the address and validates its format.
// An empty email is allowed and stays empty.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return "", domain.BadRequest("Invalid email format: " + email)
	}
	return email, nil
}
