package usecase

import (
	"crypto/subtle"
	"strings"

	domainErrors "github.com/passtrack/passboard/internal/domain/errors"
	pkgAuth "github.com/passtrack/passboard/internal/pkg/auth"
)

// AuthUseCase validates the single operator account and manages session tokens.
type AuthUseCase struct {
	adminUsername string
	adminPassword string
	comparer      pkgAuth.SecretComparer
	tokens        pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(adminUsername, adminPassword string, comparer pkgAuth.SecretComparer, tokens pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		comparer:      comparer,
		tokens:        tokens,
	}
}

// Authenticate checks credentials against the configured account and
// returns a session token on success.
func (u *AuthUseCase) Authenticate(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(u.adminUsername)) == 1
	passwordErr := u.comparer.Compare(u.adminPassword, password)
	if !usernameMatch || passwordErr != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(u.adminUsername)
}

// ValidateSession checks a session token and confirms it belongs to the
// operator account.
func (u *AuthUseCase) ValidateSession(token string) error {
	if token == "" {
		return pkgAuth.ErrInvalidToken
	}
	subject, err := u.tokens.ParseToken(token)
	if err != nil {
		return err
	}
	if subject != u.adminUsername {
		return pkgAuth.ErrInvalidToken
	}
	return nil
}
