package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/auth"
	"golang.org/x/crypto/bcrypt"
)

// StaticCredentialProvider holds the single administrator credential pair.
// Only the bcrypt hash of the password is kept.
type StaticCredentialProvider struct {
	username     string
	passwordHash []byte
	subject      string
}

// NewStaticCredentialProvider builds a provider from either a plain password
// or a precomputed bcrypt hash. The hash wins when both are given.
func NewStaticCredentialProvider(username, password, passwordHash, subject string) (*StaticCredentialProvider, error) {
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	if subject == "" {
		return nil, errors.New("admin subject is required")
	}

	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, errors.New("admin password or password hash is required")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}

	return &StaticCredentialProvider{
		username:     username,
		passwordHash: hash,
		subject:      subject,
	}, nil
}

// Authenticate implements auth.CredentialProvider.
func (p *StaticCredentialProvider) Authenticate(username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password))
	if !usernameOK || passwordErr != nil {
		return "", auth.ErrInvalidCredentials
	}
	return p.subject, nil
}
