package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/company-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey struct{ name string }

var subjectCtxKey = &contextKey{"Subject"}

const bearerPrefix = "Bearer "

// TokenFromBearerHeader is a jwtauth token finder that only accepts the exact
// "Bearer " prefix.
func TokenFromBearerHeader(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// Verifier decodes the bearer token into the request context. AuthRequired
// must run after it.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, TokenFromBearerHeader)
}

func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			switch {
			case errors.Is(err, jwtauth.ErrNoTokenFound):
				response.HandleError(w, auth.ErrUnauthorized)
			case errors.Is(err, jwtauth.ErrExpired):
				response.HandleError(w, auth.ErrTokenExpired)
			default:
				response.HandleError(w, auth.ErrInvalidToken)
			}
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims[jwt.ClaimType].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		subject := token.Subject()
		if subject == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), subjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}

// SubjectFromContext returns the authenticated caller set by AuthRequired.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	return subject, ok && subject != ""
}
