package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/educlima/vasco-app/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueToken signs a token for user that stays valid while user is the
// logged-in user and the configured session duration has not elapsed.
func (s *Service) IssueToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, ErrNotAuthenticated
	}

	now := s.now()
	expires := now.Add(s.cfg.SessionDuration)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"exp":   expires.Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// ValidateToken verifies a token and returns the current user it was issued to
func (s *Service) ValidateToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	// Tokens outlive logouts; only the current session's user is accepted.
	user := s.CurrentUser()
	if user == nil || user.ID != userID {
		return nil, ErrInvalidToken
	}
	return user, nil
}
