package repository

import (
	"context"
	"errors"

	"recipeme/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when no recipe has the requested id.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository is the read side of the recipe collection.
type RecipeRepository interface {
	// FindAll returns every recipe in store order.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindByID retrieves a single recipe, or ErrRecipeNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
}
