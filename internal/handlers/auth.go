package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/educlima/vasco-app/internal/logging"
	"github.com/educlima/vasco-app/internal/middleware"
	"github.com/educlima/vasco-app/internal/models"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/educlima/vasco-app/internal/validation"
	"github.com/go-chi/render"
)

// sessionResponse is the state projection plus a token for the current user
type sessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	CurrentUser     *models.User `json:"currentUser"`
	Token           string       `json:"token,omitempty"`
	ExpiresAt       *time.Time   `json:"expiresAt,omitempty"`
	Message         string       `json:"message,omitempty"`
}

// Session returns who is logged in. An authenticated state carries a fresh
// token so a restored session can reach protected routes.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	resp := h.withToken(w, r, h.authService.State())
	render.JSON(w, r, resp)
}

// Login handles login form submission
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var form validation.Login
	if !h.decode(w, r, &form) {
		return
	}

	if err := form.Validate(); err != nil {
		h.jsonError(w, r, err.Error(), string(validation.FieldRequired), http.StatusBadRequest)
		return
	}

	pause(r.Context(), h.cfg.LoginDelay)

	if _, err := h.authService.Authenticate(r.Context(), form.Email, form.Password); err != nil {
		h.jsonError(w, r, auth.MsgInvalidCredentials, "", http.StatusUnauthorized)
		return
	}

	render.JSON(w, r, h.withToken(w, r, h.authService.State()))
}

// Register handles registration form submission
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var form validation.Registration
	if !h.decode(w, r, &form) {
		return
	}

	if err := form.Validate(h.now()); err != nil {
		verr, _ := validation.AsError(err)
		h.metrics.ValidationFailure(string(verr.Field))
		h.jsonError(w, r, verr.Message, string(verr.Field), http.StatusUnprocessableEntity)
		return
	}

	pause(r.Context(), h.cfg.RegisterDelay)

	_, err := h.authService.CreateAccount(r.Context(), auth.RegisterInput{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		BirthDate: form.BirthDate,
		Password:  form.Password,
	})
	if errors.Is(err, auth.ErrEmailExists) {
		h.jsonError(w, r, auth.MsgEmailExists, string(validation.FieldEmail), http.StatusConflict)
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "registration failed", logging.Err(err))
		h.jsonError(w, r, "registration failed", "", http.StatusInternalServerError)
		return
	}

	resp := h.withToken(w, r, h.authService.State())
	resp.Message = auth.MsgRegistered
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

// Logout handles user logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	render.JSON(w, r, sessionResponse{})
}

// withToken builds the response for state and, when someone is
// logged in, issues a token and sets the session cookie.
func (h *Handler) withToken(w http.ResponseWriter, r *http.Request, state auth.State) sessionResponse {
	resp := sessionResponse{
		IsAuthenticated: state.IsAuthenticated,
		CurrentUser:     state.CurrentUser,
	}
	if !state.IsAuthenticated {
		return resp
	}

	token, expires, err := h.authService.IssueToken(state.CurrentUser)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to issue token", logging.Err(err), slog.String("user_id", state.CurrentUser.ID))
		return resp
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	resp.Token = token
	resp.ExpiresAt = &expires
	return resp
}
