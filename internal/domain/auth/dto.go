package auth

import "github.com/cmlabs-hris/company-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate reports blank fields as ErrInvalidCredentials, like a wrong pair.
func (r *LoginRequest) Validate() error {
	if validator.IsEmpty(r.Username) || r.Password == "" {
		return ErrInvalidCredentials
	}
	return nil
}

type TokenResponse struct {
	AccessToken string
	ExpiresAt   int64
}
