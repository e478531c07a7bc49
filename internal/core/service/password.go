package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. bcrypt embeds a fresh random
// salt on every call, so hashing the same plaintext twice yields different
// digests.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored digest. Comparison
// failures of any kind, including a corrupt digest, report false rather than
// propagating an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
