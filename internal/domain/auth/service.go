package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}

// CredentialProvider checks a username/password pair and returns the
// subject the issued token should carry.
type CredentialProvider interface {
	Authenticate(username, password string) (subject string, err error)
}
