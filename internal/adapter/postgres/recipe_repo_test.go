package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeColumns() []string {
	return []string{"id", "title", "instructions", "minutes_to_complete", "user_id", "created_at"}
}

func TestRecipeCreate_WithMinutes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepo(db)
	minutes := 30

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes (title, instructions, minutes_to_complete, user_id, created_at)")).
		WithArgs("Tortilla", "long instructions", int64(30), int64(7), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(recipeColumns()).
			AddRow(1, "Tortilla", "long instructions", 30, 7, time.Now()))

	rec, err := repo.Create(context.Background(), 7, "Tortilla", "long instructions", &minutes, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, int64(7), rec.UserID)
	require.NotNil(t, rec.MinutesToComplete)
	assert.Equal(t, 30, *rec.MinutesToComplete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCreate_NilMinutes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes")).
		WithArgs("Tortilla", "long instructions", nil, int64(7), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(recipeColumns()).
			AddRow(1, "Tortilla", "long instructions", nil, 7, time.Now()))

	rec, err := repo.Create(context.Background(), 7, "Tortilla", "long instructions", nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, rec.MinutesToComplete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeListAll_JoinsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepo(db)

	cols := []string{"id", "title", "instructions", "minutes_to_complete", "user_id", "created_at",
		"id", "username", "image_url", "bio"}
	mock.ExpectQuery("SELECT r.id, r.title, r.instructions").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "A", "instructions a", 10, 1, time.Now(), 1, "ana", "", "").
			AddRow(2, "B", "instructions b", nil, 2, time.Now(), 2, "bob", "http://img", "hi"))

	recipes, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	require.NotNil(t, recipes[0].User)
	assert.Equal(t, "ana", recipes[0].User.Username)
	require.NotNil(t, recipes[0].MinutesToComplete)
	assert.Equal(t, 10, *recipes[0].MinutesToComplete)

	assert.Nil(t, recipes[1].MinutesToComplete)
	assert.Equal(t, "bob", recipes[1].User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
