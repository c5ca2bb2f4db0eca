package domain

import (
	"context"
	"time"
)

// Recipe represents a recipe shared by a user. MinutesToComplete is optional
// and nil when the author did not provide one. User is the owning user,
// populated on reads for display; it is not written through this struct.
type Recipe struct {
	ID                int64
	Title             string
	Instructions      string
	MinutesToComplete *int
	UserID            int64
	CreatedAt         time.Time

	User *User
}

// RecipeRepository is the port for recipe persistence.
type RecipeRepository interface {
	Create(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*Recipe, error)
	ListAll(ctx context.Context) ([]Recipe, error)
}
