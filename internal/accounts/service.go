// Package accounts implements signup, login and logout over the persistence
// store. Credentials are compared in plain text; see models.User.
package accounts

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/models"
)

const MinPasswordLength = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameRequired     = errors.New("please enter your full name")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordRequired = errors.New("please enter your password")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrUserNotFound     = errors.New("no account found with this email")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrStorage          = errors.New("could not save account data")
)

// UserStore is the part of the persistence store accounts rely on.
type UserStore interface {
	ListUsers(ctx context.Context) []models.User
	AddUser(ctx context.Context, u models.User) (models.User, bool)
	CurrentUser(ctx context.Context) (models.User, bool)
	SetCurrentUser(ctx context.Context, u models.User) bool
	ClearCurrentUser(ctx context.Context) bool
	IsAuthenticated(ctx context.Context) bool
	SetAuthenticated(ctx context.Context, status bool) bool
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type Service struct {
	store  UserStore
	logger logging.Logger
}

func NewService(store UserStore, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Signup registers a new account and signs it in. Names and email are
// trimmed; the password is taken as is.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (models.User, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)

	switch {
	case first == "" || last == "":
		return models.User{}, ErrNameRequired
	case !ValidEmail(email):
		return models.User{}, ErrInvalidEmail
	case len(req.Password) < MinPasswordLength:
		return models.User{}, ErrPasswordTooShort
	}

	if _, ok := s.findByEmail(ctx, email); ok {
		return models.User{}, ErrEmailTaken
	}

	u, ok := s.store.AddUser(ctx, models.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  req.Password,
	})
	if !ok {
		return models.User{}, ErrStorage
	}

	if err := s.signIn(ctx, u); err != nil {
		return models.User{}, err
	}
	s.logger.Info(ctx, "account created", "user_id", u.ID)
	return u.Profile(), nil
}

// Login signs in the account registered under email.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return models.User{}, ErrInvalidEmail
	}
	if password == "" {
		return models.User{}, ErrPasswordRequired
	}

	u, ok := s.findByEmail(ctx, email)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if u.Password != password {
		return models.User{}, ErrWrongPassword
	}

	if err := s.signIn(ctx, u); err != nil {
		return models.User{}, err
	}
	s.logger.Info(ctx, "login successful", "user_id", u.ID)
	return u.Profile(), nil
}

// Logout drops the auth flag and the current-user record. Planner data and
// the account registry stay.
func (s *Service) Logout(ctx context.Context) {
	s.store.SetAuthenticated(ctx, false)
	s.store.ClearCurrentUser(ctx)
}

// Authorized is the gate for protected operations.
func (s *Service) Authorized(ctx context.Context) bool {
	return s.store.IsAuthenticated(ctx)
}

// Current returns the signed-in profile.
func (s *Service) Current(ctx context.Context) (models.User, bool) {
	return s.store.CurrentUser(ctx)
}

func (s *Service) signIn(ctx context.Context, u models.User) error {
	if !s.store.SetCurrentUser(ctx, u) || !s.store.SetAuthenticated(ctx, true) {
		return ErrStorage
	}
	return nil
}

// findByEmail is a case-insensitive linear scan.
func (s *Service) findByEmail(ctx context.Context, email string) (models.User, bool) {
	for _, u := range s.store.ListUsers(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}
