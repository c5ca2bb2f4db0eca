package postgres

import (
	"context"
	"database/sql"
	"time"

	"recipeshare/internal/domain"
)

// RecipeRepo implements recipe repository operations on DB.
type RecipeRepo struct {
	db *DB
}

// NewRecipeRepo wraps a DB as a RecipeRepository.
func NewRecipeRepo(db *DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// Create inserts a recipe owned by the given user.
func (r *RecipeRepo) Create(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*domain.Recipe, error) {
	var (
		rec domain.Recipe
		m   sql.NullInt64
	)
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO recipes (title, instructions, minutes_to_complete, user_id, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, title, instructions, minutes_to_complete, user_id, created_at",
		title, instructions, minutes, userID, createdAt.UTC(),
	).Scan(&rec.ID, &rec.Title, &rec.Instructions, &m, &rec.UserID, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if m.Valid {
		v := int(m.Int64)
		rec.MinutesToComplete = &v
	}
	return &rec, nil
}

// ListAll returns every recipe joined with its owner, ordered by id.
func (r *RecipeRepo) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT r.id, r.title, r.instructions, r.minutes_to_complete, r.user_id, r.created_at,
			u.id, u.username, u.image_url, u.bio
		FROM recipes r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Recipe
	for rows.Next() {
		var (
			rec domain.Recipe
			u   domain.User
			m   sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Instructions, &m, &rec.UserID, &rec.CreatedAt,
			&u.ID, &u.Username, &u.ImageURL, &u.Bio); err != nil {
			return nil, err
		}
		if m.Valid {
			v := int(m.Int64)
			rec.MinutesToComplete = &v
		}
		rec.User = &u
		out = append(out, rec)
	}
	return out, rows.Err()
}
