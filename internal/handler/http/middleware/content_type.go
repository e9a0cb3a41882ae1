package middleware

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/company-backend-go/internal/handler/http/response"
)

// AllowContentType rejects requests that carry a body of any other media type
// with 415 and the error envelope. Bodiless requests pass through.
func AllowContentType(contentTypes ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		allowed[strings.ToLower(strings.TrimSpace(ct))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
			if _, ok := allowed[strings.ToLower(strings.TrimSpace(mediaType))]; !ok {
				response.Error(w, http.StatusUnsupportedMediaType, "unsupported media type", "content type must be application/json")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
