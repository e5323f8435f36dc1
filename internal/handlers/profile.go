package handlers

import (
	"errors"
	"net/http"

	"github.com/educlima/vasco-app/internal/middleware"
	"github.com/educlima/vasco-app/internal/models"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/educlima/vasco-app/internal/validation"
	"github.com/go-chi/render"
)

type profileResponse struct {
	User           *models.User `json:"user"`
	MembershipDays int          `json:"membershipDays"`
	Message        string       `json:"message,omitempty"`
}

// Profile returns the logged-in user's profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, profileResponse{
		User:           middleware.GetUser(r),
		MembershipDays: models.MembershipDays(h.now()),
	})
}

// UpdateProfile saves a new name and phone for the logged-in user
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var form validation.Profile
	if !h.decode(w, r, &form) {
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), form)
	if verr, ok := validation.AsError(err); ok {
		h.jsonError(w, r, verr.Message, string(verr.Field), http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, auth.ErrNotAuthenticated) {
		h.jsonError(w, r, "Unauthorized", "", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.jsonError(w, r, "profile update failed", "", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, profileResponse{
		User:           user,
		MembershipDays: models.MembershipDays(h.now()),
		Message:        auth.MsgProfileUpdated,
	})
}

type sanitizeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type sanitizeResponse struct {
	Value string `json:"value"`
}

// Sanitize applies the keystroke filter for a form field
func (h *Handler) Sanitize(w http.ResponseWriter, r *http.Request) {
	var req sanitizeRequest
	if !h.decode(w, r, &req) {
		return
	}
	render.JSON(w, r, sanitizeResponse{Value: validation.Sanitize(validation.Field(req.Field), req.Value)})
}
