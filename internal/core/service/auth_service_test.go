package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository used across the service tests.
type stubUserRepo struct {
	users   map[string]*domain.User
	creates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, value string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == value || (u.Email != "" && u.Email == value) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameAndEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username || (email != "" && u.Email == email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context, skip, limit int) (*domain.Page[domain.User], error) {
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	total := int64(len(all))
	if skip > len(all) {
		skip = len(all)
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return domain.NewPage(all[skip:end], skip, limit, total), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || (user.Email != "" && u.Email == user.Email) {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.creates++
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	return NewAuthService(repo, newTestTokenService(t)), repo
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "pw1",
		Email:    "A@X.com",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default USER role, got %s", user.Role)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Password != "" {
		t.Fatalf("projection must not carry the password")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set at creation")
	}
}

func TestAuthService_Register_PasswordIsHashed(t *testing.T) {
	svc, repo := newTestAuthService(t)

	user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.Password == "pw" {
		t.Fatalf("password stored in plaintext")
	}
	if !CheckPassword("pw", stored.Password) {
		t.Fatalf("stored digest does not verify")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pw", Email: "bob@x.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same username with a different email still collides (OR policy).
	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pw2", Email: "other@x.com"})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "pw", Email: "carol@x.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol2", Password: "pw", Email: "carol@x.com"})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthService_Register_EmptyEmailsDoNotCollide(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "u1", Password: "pw"}); err != nil {
		t.Fatalf("register u1: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "u2", Password: "pw"}); err != nil {
		t.Fatalf("register u2 without email should not collide: %v", err)
	}
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "pw", Email: "not-an-email"})
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != 400 {
		t.Fatalf("expected 400 for malformed email, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("nothing must be persisted before validation passes")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "erin", Password: "pw", Email: "erin@x.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, identity := range []string{"erin", "erin@x.com"} {
		resp, err := svc.Login(context.Background(), identity, "pw")
		if err != nil {
			t.Fatalf("login by %q: %v", identity, err)
		}
		if resp.TokenType != "bearer" {
			t.Fatalf("token_type: got %q", resp.TokenType)
		}

		claims, err := svc.tokens.Verify(resp.AccessToken)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if claims["email"] != "erin@x.com" {
			t.Fatalf("email claim: got %v", claims["email"])
		}
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Password: "goodpw"})

	_, err := svc.Login(context.Background(), "frank", "badpw")
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "ghost", "pw")
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
}
