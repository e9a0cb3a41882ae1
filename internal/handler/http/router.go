package http

import (
	"log/slog"

	"github.com/cmlabs-hris/company-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(log *slog.Logger, allowedOrigins []string, JWTService jwt.Service, authHandler AuthHandler, companyHandler CompanyHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(log, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: logger.Schema,
	}))

	r.Use(middleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Post("/login", authHandler.Login)

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)

		r.Route("/company", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Post("/", companyHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", companyHandler.GetByID)
				r.Put("/", companyHandler.Update)
				r.Delete("/", companyHandler.Delete)
			})
		})
	})
	return r
}
