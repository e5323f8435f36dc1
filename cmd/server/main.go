// Vasco membership portal - entry point for the web server
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

	"github.com/educlima/vasco-app/internal/config"
	"github.com/educlima/vasco-app/internal/handlers"
	"github.com/educlima/vasco-app/internal/logging"
	"github.com/educlima/vasco-app/internal/metrics"
	"github.com/educlima/vasco-app/internal/middleware"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/educlima/vasco-app/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logging.Err(err))
		os.Exit(1)
	}

	log := logging.New(os.Stderr, cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server failed", logging.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// Open the persisted session slot
	slots, closeSlots, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSlots()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheus(reg)

	// Initialize services
	authService := auth.NewService(cfg, auth.NewDirectory(auth.SeedAccount()), slots, log, recorder)
	authService.RestoreSession(ctx)

	// Initialize handlers and routes
	h := handlers.New(cfg, log, authService, recorder)
	router := h.Routes(middleware.NewAuth(authService), promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Apply global middleware
	handler := middleware.Chain(
		router,
		middleware.Recover(log),
		middleware.SecurityHeaders,
		middleware.Logger(log),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("environment", cfg.Environment),
			slog.String("session_backend", cfg.SessionBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
