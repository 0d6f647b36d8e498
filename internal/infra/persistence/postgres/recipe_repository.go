package postgres

import (
	"context"

	"recipeme/internal/domain/entity"
	"recipeme/internal/domain/repository"
	"recipeme/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns the recipe store backed by the recipes table.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindAll returns every recipe. No ORDER BY is applied, so rows come back in store order.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	if err := repo.db.WithContext(ctx).Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for _, recipeM := range recipeMs {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// FindByID retrieves a single recipe.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Cuisine:     data.Cuisine,
		Author:      data.Author,
		PrepMinutes: data.PrepMinutes,
		CookMinutes: data.CookMinutes,
		Serves:      data.Serves,
		Ingredients: data.Ingredients,
		Method:      data.Method,
		Equipment:   data.Equipment,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}
