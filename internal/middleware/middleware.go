// Package middleware provides HTTP middleware functions
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/educlima/vasco-app/internal/models"
	chimw "github.com/go-chi/chi/middleware"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "session"

// Logger logs all HTTP requests
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; img-src 'self' data:;")
		next.ServeHTTP(w, r)
	})
}

// Recover handles panics gracefully
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.ErrorContext(r.Context(), "panic recovered", slog.Any("panic", err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// TokenValidator resolves a session token to the logged-in user
type TokenValidator interface {
	ValidateToken(token string) (*models.User, error)
}

// Auth middleware for protected routes
type Auth struct {
	validator TokenValidator
}

// NewAuth creates a new auth middleware
func NewAuth(validator TokenValidator) *Auth {
	return &Auth{validator: validator}
}

// RequireAuth ensures the user is authenticated
func (m *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := m.getUserFromRequest(r)
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Auth) getUserFromRequest(r *http.Request) *models.User {
	// Try cookie first
	cookie, err := r.Cookie(SessionCookie)
	if err == nil && cookie.Value != "" {
		user, err := m.validator.ValidateToken(cookie.Value)
		if err == nil {
			return user
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := m.validator.ValidateToken(token)
		if err == nil {
			return user
		}
	}

	return nil
}

// GetUser retrieves the user from the request context
func GetUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// Chain applies middleware in order
func Chain(h http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
