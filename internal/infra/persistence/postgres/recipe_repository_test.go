package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipeme/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

var recipeColumns = []string{
	"id", "name", "description", "cuisine", "author", "prep_minutes", "cook_minutes",
	"serves", "ingredients", "method", "equipment", "image_url", "created_at",
}

func TestRecipeRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "recipes"`).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(first.String(), "Carbonara", "Roman pasta", "Italian", "anna", 10, 15, 2,
				[]byte(`["spaghetti","eggs"]`), []byte(`["boil","toss"]`), []byte(`["pot"]`), "", createdAt).
			AddRow(second.String(), "Shakshuka", "", "Middle Eastern", "ben", 10, 25, 3,
				[]byte(`["eggs"]`), []byte(`[]`), []byte(`[]`), "", createdAt))

	recipes, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, first, recipes[0].ID)
	assert.Equal(t, "Carbonara", recipes[0].Name)
	assert.Equal(t, []string{"spaghetti", "eggs"}, recipes[0].Ingredients)
	assert.Equal(t, []string{"boil", "toss"}, recipes[0].Method)
	assert.Equal(t, []string{"pot"}, recipes[0].Equipment)
	assert.Equal(t, 25, recipes[0].TotalMinutes())
	assert.Equal(t, second, recipes[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_FindAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes"`).WillReturnRows(sqlmock.NewRows(recipeColumns))

	recipes, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(id.String(), "Carbonara", "Roman pasta", "Italian", "anna", 10, 15, 2,
				[]byte(`["spaghetti"]`), []byte(`["boil"]`), []byte(`["pot"]`), "", createdAt))

	recipe, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, recipe.ID)
	assert.Equal(t, "Roman pasta", recipe.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows(recipeColumns))

	recipe, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeRepository_FindByID_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	dbErr := errors.New("timeout")
	mock.ExpectQuery(`SELECT \* FROM "recipes"`).WillReturnError(dbErr)

	recipe, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, repository.ErrRecipeNotFound)
}
