package service

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/identity-api/internal/core/domain"
)

// TokenService issues and verifies RS256-signed bearer tokens. The private
// key signs, the public key verifies, so an instance holding only the public
// key can validate tokens minted elsewhere. Key material is read-only after
// construction and safe to share across requests.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	defaultTTL time.Duration
}

func NewTokenService(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &TokenService{privateKey: privateKey, publicKey: publicKey, defaultTTL: defaultTTL}
}

// LoadKeyPair reads the RSA key pair from the given PEM files.
func LoadKeyPair(privatePath, publicPath string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privPEM, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read private key: %w", err)
	}
	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}

	pubPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read public key: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}

	return priv, pub, nil
}

// Issue signs a token carrying the user identity with an absolute expiry of
// now+ttl. The ttl is applied as given: a zero or negative ttl produces a
// token that is already expired.
func (s *TokenService) Issue(userID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   "",
		"uid":   userID,
		"email": email,
		"exp":   time.Now().UTC().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return t.SignedString(s.privateKey)
}

// Verify checks the signature against the public key and the exp claim
// against the current time. No claim is inspected before the signature
// verifies. Every failure mode collapses to domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.publicKey, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// DefaultTTL reports the configured token lifetime.
func (s *TokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}
