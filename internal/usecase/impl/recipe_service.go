package impl

import (
	"context"
	"log/slog"
	"slices"

	"recipeme/config"
	deliverycontext "recipeme/internal/delivery/context"
	"recipeme/internal/domain/entity"
	domainerrors "recipeme/internal/domain/errors"
	"recipeme/internal/domain/repository"
	"recipeme/internal/domain/service"
	"recipeme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recipeService struct {
	recipeRepo          repository.RecipeRepository
	qrcodeService       service.QRCodeService
	additionalEquipment []string
	baseURL             string
	logger              *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo    repository.RecipeRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	equipment := config.DefaultAdditionalEquipment
	if params.Config.Recipes != nil && len(params.Config.Recipes.AdditionalEquipment) > 0 {
		equipment = params.Config.Recipes.AdditionalEquipment
	}

	return &recipeService{
		recipeRepo:          params.RecipeRepo,
		qrcodeService:       params.QRCodeService,
		additionalEquipment: slices.Clone(equipment),
		baseURL:             params.Config.HTTP.BaseURL,
		logger:              params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes returns the whole collection.
func (srv *recipeService) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// GetRecipe looks a recipe up by its textual id.
func (srv *recipeService) GetRecipe(ctx context.Context, id string) (*usecase.RecipeDetail, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.RecipeDetail{
		Recipe:              recipe,
		AdditionalEquipment: slices.Clone(srv.additionalEquipment),
	}, nil
}

// RecipeQRCode renders a QR code that opens the recipe page.
func (srv *recipeService) RecipeQRCode(ctx context.Context, id string) ([]byte, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePNG(srv.baseURL + "/recipe/" + recipe.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render recipe QR code")
	}

	return png, nil
}

func (srv *recipeService) findRecipe(ctx context.Context, id string) (*entity.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		srv.log(ctx).Debug("Malformed recipe id", slog.String("id", id))

		return nil, domainerrors.ErrRecipeNotFound.WrapMessage("malformed recipe id")
	}

	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("no recipe with id " + recipeID.String())
		}
		srv.log(ctx).Error("Failed to load recipe", slog.String("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}
