package service

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/userhub/identity-api/internal/core/domain"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return NewTokenService(key, &key.PublicKey, time.Hour)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user-123", "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims["uid"] != "user-123" {
		t.Fatalf("uid claim: got %v", claims["uid"])
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("email claim: got %v", claims["email"])
	}
	if claims["sub"] != "" {
		t.Fatalf("sub should be the empty placeholder, got %v", claims["sub"])
	}
}

func TestTokenService_ZeroTTLAlreadyExpired(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user-123", "", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// exp equals issuance time; by the next second boundary the token is stale.
	time.Sleep(1100 * time.Millisecond)

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user-123", "", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user-123", "", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t)
	verifier := newTestTokenService(t)

	token, err := issuer.Issue("user-123", "", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := newTestTokenService(t)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
