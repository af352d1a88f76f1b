package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/edustream-backend/internal/auth"
	"github.com/heartmarshall/edustream-backend/internal/config"
	"github.com/heartmarshall/edustream-backend/internal/transport/middleware"
	"github.com/heartmarshall/edustream-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the configured stores and serves the HTTP API until ctx is cancelled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build backend: %w", err)
	}
	defer backend.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, backend, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// NewHandler assembles the middleware chain and the REST router.
func NewHandler(cfg *config.Config, logger *slog.Logger, backend *Backend, limiter *middleware.RateLimiter) http.Handler {
	var authMW middleware.Middleware
	if cfg.Auth.Enabled() {
		tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
		authMW = middleware.Auth(tokens, logger)
	}

	opts := rest.RouterOptions{Middleware: []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
		authMW,
	}}
	if limiter != nil {
		perMinute := cfg.Server.RateLimitPerMinute
		opts.WriteLimit = func(name string) middleware.Middleware {
			return limiter.Limit(name, perMinute)
		}
	}

	return rest.NewRouter(rest.Handlers{
		Videos:    rest.NewVideoHandler(backend.Catalog, logger, cfg.Server.MaxUploadBytes),
		Downloads: rest.NewDownloadHandler(backend.Tracking, logger),
		Health:    rest.NewHealthHandler(BuildVersion(), backend.Checks...),
		Media:     backend.Media,
	}, opts)
}
