package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"recipeshare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRecipeRepo struct {
	createFn func(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*domain.Recipe, error)
	listFn   func(ctx context.Context) ([]domain.Recipe, error)
}

func (m *mockRecipeRepo) Create(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*domain.Recipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, title, instructions, minutes, createdAt)
	}
	return &domain.Recipe{ID: 1, UserID: userID, Title: title, Instructions: instructions, MinutesToComplete: minutes, CreatedAt: createdAt}, nil
}

func (m *mockRecipeRepo) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestRecipeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	minutes := 30

	svc := NewRecipeService(&mockRecipeRepo{})
	recipe, err := svc.Create(ctx, 7, "Tortilla", strings.Repeat("chop and fry ", 5), &minutes)

	require.NoError(t, err)
	assert.Equal(t, int64(7), recipe.UserID)
	assert.Equal(t, "Tortilla", recipe.Title)
	require.NotNil(t, recipe.MinutesToComplete)
	assert.Equal(t, 30, *recipe.MinutesToComplete)
}

func TestRecipeService_Create_InstructionsBoundary(t *testing.T) {
	ctx := context.Background()

	inserted := false
	repo := &mockRecipeRepo{
		createFn: func(ctx context.Context, userID int64, title, instructions string, minutes *int, createdAt time.Time) (*domain.Recipe, error) {
			inserted = true
			return &domain.Recipe{ID: 1, UserID: userID, Title: title, Instructions: instructions}, nil
		},
	}
	svc := NewRecipeService(repo)

	var vErr *domain.ValidationError
	_, err := svc.Create(ctx, 1, "T", strings.Repeat("x", 49), nil)
	assert.ErrorAs(t, err, &vErr)
	assert.False(t, inserted, "a failed validation must not reach the store")

	_, err = svc.Create(ctx, 1, "T", strings.Repeat("x", 50), nil)
	assert.NoError(t, err)
	assert.True(t, inserted)
}

func TestRecipeService_Create_MissingTitle(t *testing.T) {
	ctx := context.Background()
	svc := NewRecipeService(&mockRecipeRepo{})

	var vErr *domain.ValidationError
	_, err := svc.Create(ctx, 1, "", strings.Repeat("x", 60), nil)
	assert.ErrorAs(t, err, &vErr)
}

func TestRecipeService_List(t *testing.T) {
	ctx := context.Background()

	repo := &mockRecipeRepo{
		listFn: func(ctx context.Context) ([]domain.Recipe, error) {
			return []domain.Recipe{
				{ID: 1, Title: "A", UserID: 1, User: &domain.User{ID: 1, Username: "ana"}},
				{ID: 2, Title: "B", UserID: 2, User: &domain.User{ID: 2, Username: "bob"}},
			}, nil
		},
	}

	svc := NewRecipeService(repo)
	recipes, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "ana", recipes[0].User.Username)
}
