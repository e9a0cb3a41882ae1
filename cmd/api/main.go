package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/company-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/company-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/company-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/company-backend-go/internal/service/auth"
	serviceCompany "github.com/cmlabs-hris/company-backend-go/internal/service/company"
)

const (
	appName    = "company-api"
	appVersion = "v1.0.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.Options{
		Level:   cfg.App.LogLevel,
		App:     appName,
		Version: appVersion,
		Env:     cfg.App.Env,
	})
	slog.SetDefault(log)

	db, err := database.NewPostgreSQLDB(cfg.Database.URL)
	if err != nil {
		log.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	credentials, err := serviceAuth.NewStaticCredentialProvider(
		cfg.Admin.Username,
		cfg.Admin.Password,
		cfg.Admin.PasswordHash,
		cfg.Admin.Subject,
	)
	if err != nil {
		log.Error("Error preparing admin credentials", "error", err)
		os.Exit(1)
	}

	authService := serviceAuth.NewAuthService(credentials, JWTService)
	companyService := serviceCompany.NewCompanyService(companyRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)

	router := appHTTP.NewRouter(log, cfg.CORS.AllowedOrigins, JWTService, authHandler, companyHandler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := run(ctx, server, log); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is canceled, then drains in-flight requests.
func run(ctx context.Context, server *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
