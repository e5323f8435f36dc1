// Package handlers provides HTTP request handlers
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/educlima/vasco-app/internal/config"
	"github.com/educlima/vasco-app/internal/metrics"
	"github.com/educlima/vasco-app/internal/middleware"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// Handler contains all HTTP handlers and dependencies
type Handler struct {
	cfg         *config.Config
	log         *slog.Logger
	authService *auth.Service
	metrics     metrics.Recorder
	now         func() time.Time
}

// New creates a new handler with all dependencies
func New(cfg *config.Config, log *slog.Logger, authService *auth.Service, recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		cfg:         cfg,
		log:         log.With(slog.String("component", "http")),
		authService: authService,
		metrics:     recorder,
		now:         time.Now,
	}
}

// Routes builds the API router. metricsHandler may be nil.
func (h *Handler) Routes(authMiddleware *middleware.Auth, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", h.Health)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", h.Session)
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
		r.Post("/sanitize", h.Sanitize)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/profile", h.Profile)
			r.Put("/profile", h.UpdateProfile)
		})
	})

	return r
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// decode reads a JSON body into v, answering 400 on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.jsonError(w, r, "invalid request body", "", http.StatusBadRequest)
		return false
	}
	return true
}

// jsonError writes a JSON error response
func (h *Handler) jsonError(w http.ResponseWriter, r *http.Request, message, field string, status int) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message, Field: field})
}

// pause waits d before a form result is reported, or until the client goes away
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
