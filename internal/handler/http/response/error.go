package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/validator"
)

const (
	invalidTokenMessage = "invalid token"

	malformedTokenDetail = "token is malformed or has an invalid signature"
	expiredTokenDetail   = "token has expired"
	storageErrorDetail   = "critical storage error"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		if first, ok := validationErrs.First(); ok {
			BadRequest(w, first.Message, first.Field)
			return
		}
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrEmailAlreadyExists):
		BadRequest(w, company.ErrEmailAlreadyExists.Error(), "")
	case errors.Is(err, company.ErrCodeAlreadyExists):
		BadRequest(w, company.ErrCodeAlreadyExists.Error(), "")
	case errors.Is(err, company.ErrInvalidID):
		BadRequest(w, company.ErrInvalidID.Error(), "")
	case errors.Is(err, company.ErrValueTooLong):
		BadRequest(w, company.ErrValueTooLong.Error(), "")
	case errors.Is(err, company.ErrInvalidSortField):
		BadRequest(w, company.ErrInvalidSortField.Error(), "sort")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "data not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		BadRequest(w, auth.ErrInvalidCredentials.Error(), "")
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, auth.ErrUnauthorized.Error(), "")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, invalidTokenMessage, expiredTokenDetail)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, invalidTokenMessage, malformedTokenDetail)

	case errors.Is(err, database.ErrStorage):
		InternalServerError(w, storageErrorDetail)

	// Default
	default:
		InternalServerError(w, "")
	}
}
