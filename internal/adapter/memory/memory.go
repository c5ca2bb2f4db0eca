// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"recipeshare/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	recipes  []domain.Recipe
	sessions map[string]*domain.Session

	userIDCounter   int64
	recipeIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.RecipeRepository = (*RecipeRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user, enforcing username uniqueness the way the
// database's unique index does.
func (db *DB) Create(ctx context.Context, username, passwordHash, imageURL, bio string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		ImageURL:     imageURL,
		Bio:          bio,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// --- RecipeRepository ---

// RecipeRepo implements recipe repository operations on DB.
type RecipeRepo struct {
	db *DB
}

// NewRecipeRepo wraps a DB as a RecipeRepository.
func NewRecipeRepo(db *DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// Create stores a recipe owned by the given user.
func (r *RecipeRepo) Create(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*domain.Recipe, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.recipeIDCounter++
	rec := domain.Recipe{
		ID:                r.db.recipeIDCounter,
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutes,
		UserID:            userID,
		CreatedAt:         createdAt.UTC(),
	}
	r.db.recipes = append(r.db.recipes, rec)
	out := rec
	return &out, nil
}

// ListAll returns every recipe with its owner attached, in insertion order.
func (r *RecipeRepo) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Recipe, len(r.db.recipes))
	copy(out, r.db.recipes)
	for i := range out {
		for _, u := range r.db.users {
			if u.ID == out[i].UserID {
				owner := *u
				out[i].User = &owner
				break
			}
		}
	}
	return out, nil
}

// --- SessionRepository ---

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	return s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
