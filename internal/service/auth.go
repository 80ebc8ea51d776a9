// Package service contains the application services sitting between the
// UI collaborator and the repositories: account lifecycle and the feed.
package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/repository/users"
	"github.com/anonsen/anonsen/internal/session"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minPasswordLen = 8

// AuthService drives the account lifecycle.
//
// Contract:
//   - Register: validate input, create the account, start a remembered
//     session for it.
//   - Login: authenticate by email or username and start a session.
//   - Logout: drop the session.
//   - Restore: re-establish identity at startup from a persisted session.
type AuthService interface {
	Register(ctx context.Context, username, email, password, confirm string) (*models.User, error)
	Login(ctx context.Context, identifier, password string, rememberMe bool) (*models.User, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error)
}

type authService struct {
	users    *users.Repository
	sessions *session.Manager
}

func NewAuthService(users *users.Repository, sessions *session.Manager) AuthService {
	return &authService{users: users, sessions: sessions}
}

func validateRegistration(username, email, password, confirm string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("%w: username must be at least 3 characters of letters, digits or _", common.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

// Register creates an account and logs it in. New registrations always
// get a remembered session.
func (s *authService) Register(ctx context.Context, username, email, password, confirm string) (*models.User, error) {
	if err := validateRegistration(username, email, password, confirm); err != nil {
		return nil, err
	}

	user, err := s.users.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	s.sessions.SetSession(ctx, user, true)
	return user, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string, rememberMe bool) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	user, err := s.users.Authenticate(identifier, password)
	if err != nil {
		return nil, err
	}

	s.sessions.SetSession(ctx, user, rememberMe)
	return user, nil
}

func (s *authService) Logout(ctx context.Context) {
	s.sessions.ClearSession(ctx)
}

// Restore resolves a persisted session against the user repository at
// startup. The repository is the source of truth: a session whose user id
// no longer resolves is cleared and treated as logged out. The returned
// identity is the full user record, not the session snapshot.
func (s *authService) Restore(ctx context.Context) (*models.User, error) {
	sess := s.sessions.GetSession(ctx)
	if sess == nil || !sess.IsLoggedIn {
		return nil, common.ErrNoSession
	}

	user, ok := s.users.FindByID(sess.ID)
	if !ok {
		s.sessions.ClearSession(ctx)
		return nil, common.ErrNoSession
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error) {
	return s.users.Update(ctx, userID, upd)
}
