package auth

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	credentials auth.CredentialProvider
	jwt.Service
}

func NewAuthService(credentials auth.CredentialProvider, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentials: credentials,
		Service:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	subject, err := a.credentials.Authenticate(req.Username, req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(subject)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
