package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SecretComparer checks a submitted credential against a configured value.
type SecretComparer interface {
	Compare(configured, submitted string) error
}

// AdminSecretComparer understands both bcrypt-hashed and plain configured
// secrets. Plain values are compared in constant time.
type AdminSecretComparer struct{}

// NewAdminSecretComparer creates AdminSecretComparer.
func NewAdminSecretComparer() *AdminSecretComparer {
	return &AdminSecretComparer{}
}

// Compare returns nil when the submitted credential matches the configured one.
func (AdminSecretComparer) Compare(configured, submitted string) error {
	if isBcryptHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(submitted))
	}
	if subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) != 1 {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return nil
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
