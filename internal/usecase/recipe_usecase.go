package usecase

import (
	"context"

	"recipeme/internal/domain/entity"
)

// RecipeDetail is a recipe together with the equipment suggested on every recipe page.
type RecipeDetail struct {
	Recipe              *entity.Recipe
	AdditionalEquipment []string
}

// RecipeUsecase is the read-only access to recipes. It requires no authentication.
type RecipeUsecase interface {
	// ListRecipes returns every recipe in store order.
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)

	// GetRecipe returns domainerrors.ErrRecipeNotFound for a malformed or unknown id.
	GetRecipe(ctx context.Context, id string) (*RecipeDetail, error)

	// RecipeQRCode renders a PNG QR code linking to the recipe page.
	RecipeQRCode(ctx context.Context, id string) ([]byte, error)
}
