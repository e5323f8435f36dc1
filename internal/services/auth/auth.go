// Package auth provides the session store: the account directory, the
// single logged-in session, and its persisted copy.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/educlima/vasco-app/internal/config"
	"github.com/educlima/vasco-app/internal/logging"
	"github.com/educlima/vasco-app/internal/metrics"
	"github.com/educlima/vasco-app/internal/models"
	"github.com/educlima/vasco-app/internal/storage"
	"github.com/educlima/vasco-app/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrMalformedSession   = errors.New("malformed persisted session")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Messages shown for authentication failures.
const (
	MsgInvalidCredentials = "Email ou senha incorretos!"
	MsgEmailExists        = "Este email já está cadastrado!"
	MsgRegistered         = "Cadastro realizado com sucesso! Bem-vindo ao Vasco!"
	MsgProfileUpdated     = "Perfil atualizado com sucesso! ✅"
)

// State is the read-only view handed to collaborators
type State struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	CurrentUser     *models.User `json:"currentUser"`
}

// Service handles authentication operations. It owns the directory and the
// current session; every method runs to completion under one lock.
type Service struct {
	cfg       *config.Config
	directory *Directory
	slots     storage.SlotStore
	log       *slog.Logger
	metrics   metrics.Recorder
	now       func() time.Time

	mu      sync.Mutex
	current *models.User
}

// NewService creates a new auth service. A nil recorder records nothing.
func NewService(cfg *config.Config, directory *Directory, slots storage.SlotStore, log *slog.Logger, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Service{
		cfg:       cfg,
		directory: directory,
		slots:     slots,
		log:       log.With(slog.String("component", "auth")),
		metrics:   recorder,
		now:       time.Now,
	}
}

// RegisterInput contains registration data. Formats are expected to have
// been checked with validation.Registration already.
type RegisterInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate string
	Password  string
}

// Authenticate logs in the account matching email and password. Unknown
// email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.directory.FindByCredentials(email, password)
	if account == nil {
		s.metrics.AuthAttempt(metrics.OpLogin, metrics.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}

	user := account.Strip()
	s.startSession(ctx, user)
	s.metrics.AuthAttempt(metrics.OpLogin, metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return copyUser(user), nil
}

// Login reports whether Authenticate succeeded
func (s *Service) Login(ctx context.Context, email, password string) bool {
	_, err := s.Authenticate(ctx, email, password)
	return err == nil
}

// CreateAccount adds a new account and logs it in. The only check made here
// is email uniqueness.
func (s *Service) CreateAccount(ctx context.Context, input RegisterInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.directory.Exists(input.Email) {
		s.metrics.AuthAttempt(metrics.OpRegister, metrics.OutcomeDuplicate)
		return nil, ErrEmailExists
	}

	account := models.NewAccount(input.Name, input.Email, input.Phone, input.BirthDate, input.Password)
	if err := s.directory.Add(account); err != nil {
		s.metrics.AuthAttempt(metrics.OpRegister, metrics.OutcomeDuplicate)
		return nil, err
	}

	user := account.Strip()
	s.startSession(ctx, user)
	s.metrics.AuthAttempt(metrics.OpRegister, metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return copyUser(user), nil
}

// Register reports whether CreateAccount succeeded
func (s *Service) Register(ctx context.Context, input RegisterInput) bool {
	_, err := s.CreateAccount(ctx, input)
	return err == nil
}

// Logout ends the session and clears the persisted slot. Calling it while
// logged out does nothing.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", s.current.ID))
	}
	s.current = nil
	if err := s.slots.Delete(ctx, s.cfg.SessionKey); err != nil {
		s.log.ErrorContext(ctx, "failed to clear persisted session", logging.Err(err))
	}
	s.metrics.AuthAttempt(metrics.OpLogout, metrics.OutcomeSuccess)
	s.metrics.SessionActive(false)
}

// RestoreSession loads the persisted session, if any. The stored user is
// trusted as-is. A missing or unreadable slot leaves the session empty.
func (s *Service) RestoreSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.loadSession(ctx)
	switch {
	case errors.Is(err, ErrMalformedSession):
		s.log.WarnContext(ctx, "ignoring persisted session", logging.Err(err))
		s.metrics.AuthAttempt(metrics.OpRestore, metrics.OutcomeMalformed)
		return
	case err != nil:
		s.log.ErrorContext(ctx, "failed to read persisted session", logging.Err(err))
		s.metrics.AuthAttempt(metrics.OpRestore, metrics.OutcomeFailure)
		return
	case user == nil:
		s.metrics.AuthAttempt(metrics.OpRestore, metrics.OutcomeEmpty)
		return
	}

	s.current = user
	s.metrics.AuthAttempt(metrics.OpRestore, metrics.OutcomeSuccess)
	s.metrics.SessionActive(true)
	s.log.InfoContext(ctx, "session restored", slog.String("user_id", user.ID))
}

func (s *Service) loadSession(ctx context.Context) (*models.User, error) {
	data, err := s.slots.Get(ctx, s.cfg.SessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}
	if !user.Valid() {
		return nil, fmt.Errorf("%w: missing id or email", ErrMalformedSession)
	}
	return &user, nil
}

// UpdateProfile changes the logged-in user's name and phone after checking
// them with the registration rules.
func (s *Service) UpdateProfile(ctx context.Context, input validation.Profile) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.metrics.AuthAttempt(metrics.OpProfile, metrics.OutcomeFailure)
		return nil, ErrNotAuthenticated
	}
	if err := input.Validate(); err != nil {
		if verr, ok := validation.AsError(err); ok {
			s.metrics.ValidationFailure(string(verr.Field))
		}
		return nil, err
	}

	updated := copyUser(s.current)
	updated.Name = input.Name
	updated.Phone = input.Phone

	// A session restored from the slot may belong to an account registered
	// in an earlier run; only the session copy exists then.
	s.directory.UpdateProfile(updated.ID, updated.Name, updated.Phone)
	s.startSession(ctx, updated)
	s.metrics.AuthAttempt(metrics.OpProfile, metrics.OutcomeSuccess)
	return copyUser(updated), nil
}

// State returns whether someone is logged in and who
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		IsAuthenticated: s.current != nil,
		CurrentUser:     copyUser(s.current),
	}
}

// CurrentUser returns the logged-in user, or nil
func (s *Service) CurrentUser() *models.User {
	return s.State().CurrentUser
}

// Users lists the directory without passwords
func (s *Service) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.Users()
}

// startSession sets the current user and persists it. A failed write is
// logged; the in-memory session stays valid for this process.
func (s *Service) startSession(ctx context.Context, user *models.User) {
	s.current = user
	s.metrics.SessionActive(true)

	data, err := json.Marshal(user)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode session", logging.Err(err))
		return
	}
	if err := s.slots.Set(ctx, s.cfg.SessionKey, data); err != nil {
		s.log.ErrorContext(ctx, "failed to persist session", logging.Err(err))
	}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
