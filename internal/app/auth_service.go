// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"recipeshare/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// sessionTTL is the fixed lifetime of a session. The matching cookie MaxAge
// lives in the HTTP adapter.
const sessionTTL = 24 * time.Hour

// AuthService handles signup, credential verification and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Signup validates the fields, creates a user with a bcrypt-hashed password
// and opens a session for it. Validation failures and duplicate usernames
// surface before or instead of the insert, so a failed signup leaves no row
// and no session behind.
func (s *AuthService) Signup(ctx context.Context, username, password, imageURL, bio string) (*domain.User, string, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, username, string(hash), imageURL, bio)
	if err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, "", ErrInvalidCredentials
	}

	// An empty hash belongs to an SSO-provisioned user; bcrypt rejects it,
	// so password login for such users always fails.
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks if a session token is valid and returns its user.
// Expired sessions are deleted on first access after expiry.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// LoginWithUser creates a session for an already authenticated user
// (e.g. via SSO), provisioning the user on first login. Provisioned users
// get an empty password hash and can only log in through SSO.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, username, "", "", "")
		if errors.Is(err, domain.ErrUsernameTaken) {
			// Lost a provisioning race; the row exists now.
			user, err = s.users.GetByUsername(ctx, username)
		}
		if err != nil {
			return nil, "", err
		}
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) openSession(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, userID, token, time.Now().Add(sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
