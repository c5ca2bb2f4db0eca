package app

import (
	"context"
	"time"

	"recipeshare/internal/domain"
)

// RecipeService encapsulates the recipe-collection use cases.
type RecipeService struct {
	repo domain.RecipeRepository
}

// NewRecipeService creates a RecipeService backed by the given repository.
func NewRecipeService(repo domain.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// List returns every recipe with its owner attached.
func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.repo.ListAll(ctx)
}

// Create validates and stores a recipe owned by the given user. Validators
// run before the insert, so a failure writes nothing.
func (s *RecipeService) Create(ctx context.Context, userID int64, title, instructions string, minutes *int) (*domain.Recipe, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := domain.ValidateInstructions(instructions); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, title, instructions, minutes, time.Now())
}
