// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUsernameTaken indicates that a user with the requested username already
// exists. Store adapters translate their native unique-violation errors into
// this sentinel so callers never inspect driver errors.
var ErrUsernameTaken = errors.New("username already taken")

// User represents a registered user. PasswordHash only ever holds a bcrypt
// digest; plaintext passwords are hashed in the application layer and never
// reach this struct or any response projection.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	ImageURL     string
	Bio          string
	CreatedAt    time.Time
}

// Session represents an active user session. Token is the opaque value the
// client holds in its session cookie.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no matching row exists.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, username, passwordHash, imageURL, bio string) (*User, error)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
