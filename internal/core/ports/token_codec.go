package ports

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec issues and verifies signed bearer tokens. Implementations are
// stateless: any holder of the public key can verify a token without talking
// to the issuer.
type TokenCodec interface {
	// Issue signs a token for the given user with an absolute expiry of
	// now+ttl. The ttl is used as given; callers wanting the configured
	// default pass DefaultTTL().
	Issue(userID, email string, ttl time.Duration) (string, error)

	// Verify checks the signature and expiry and returns the embedded
	// claims. Any failure, including a malformed or expired token, is
	// domain.ErrInvalidToken.
	Verify(token string) (jwt.MapClaims, error)

	// DefaultTTL reports the configured token lifetime.
	DefaultTTL() time.Duration
}
