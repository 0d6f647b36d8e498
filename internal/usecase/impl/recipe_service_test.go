package impl

import (
	"context"
	"testing"

	"recipeme/internal/domain/entity"
	domainerrors "recipeme/internal/domain/errors"
	"recipeme/internal/domain/repository"
	mockRepo "recipeme/internal/mocks/repository"
	mockSvc "recipeme/internal/mocks/service"
	"recipeme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	recipeRepo *mockRepo.MockRecipeRepository
	qrcode     *mockSvc.MockQRCodeService
}

func createTestRecipeService(t *testing.T, equipment ...string) recipeServiceFixtures {
	f := recipeServiceFixtures{
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewRecipeService(RecipeServiceParams{
		RecipeRepo:    f.recipeRepo,
		QRCodeService: f.qrcode,
		Config:        newTestConfig(equipment...),
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestRecipeService_ListRecipes(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	recipes := []*entity.Recipe{
		{ID: uuid.New(), Name: "Carbonara"},
		{ID: uuid.New(), Name: "Shakshuka"},
	}

	f.recipeRepo.EXPECT().FindAll(ctx).Return(recipes, nil)

	got, err := f.service.ListRecipes(ctx)

	require.NoError(t, err)
	assert.Equal(t, recipes, got)
}

func TestRecipeService_ListRecipes_Empty(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()

	f.recipeRepo.EXPECT().FindAll(ctx).Return([]*entity.Recipe{}, nil)

	got, err := f.service.ListRecipes(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecipeService_ListRecipes_StoreError(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	f.recipeRepo.EXPECT().FindAll(ctx).Return(nil, dbErr)

	got, err := f.service.ListRecipes(ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dbErr)
}

func TestRecipeService_GetRecipe(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	recipe := &entity.Recipe{ID: uuid.New(), Name: "Carbonara"}

	f.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	detail, err := f.service.GetRecipe(ctx, recipe.ID.String())

	require.NoError(t, err)
	assert.Same(t, recipe, detail.Recipe)
	assert.Equal(t, []string{"pan"}, detail.AdditionalEquipment)
}

func TestRecipeService_GetRecipe_ConfiguredEquipment(t *testing.T) {
	f := createTestRecipeService(t, "wok", "spatula")
	ctx := context.Background()
	recipe := &entity.Recipe{ID: uuid.New()}

	f.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil).Times(2)

	detail, err := f.service.GetRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"wok", "spatula"}, detail.AdditionalEquipment)

	// Callers get their own copy.
	detail.AdditionalEquipment[0] = "changed"
	again, err := f.service.GetRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"wok", "spatula"}, again.AdditionalEquipment)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()

	f.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	detail, err := f.service.GetRecipe(ctx, id.String())

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipe_MalformedID(t *testing.T) {
	f := createTestRecipeService(t)

	for _, id := range []string{"", "not-an-id", "507f1f77bcf86cd799439011"} {
		detail, err := f.service.GetRecipe(context.Background(), id)

		assert.Nil(t, detail, id)
		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound, id)
	}
}

func TestRecipeService_GetRecipe_StoreError(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("timeout")

	f.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

	detail, err := f.service.GetRecipe(ctx, id.String())

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_RecipeQRCode(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	recipe := &entity.Recipe{ID: uuid.New()}
	png := []byte{0x89, 'P', 'N', 'G'}

	f.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	f.qrcode.EXPECT().GeneratePNG("http://recipes.test/recipe/" + recipe.ID.String()).Return(png, nil)

	got, err := f.service.RecipeQRCode(ctx, recipe.ID.String())

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestRecipeService_RecipeQRCode_NotFound(t *testing.T) {
	f := createTestRecipeService(t)

	got, err := f.service.RecipeQRCode(context.Background(), "bogus")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_RecipeQRCode_RenderError(t *testing.T) {
	f := createTestRecipeService(t)
	ctx := context.Background()
	recipe := &entity.Recipe{ID: uuid.New()}

	f.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	f.qrcode.EXPECT().GeneratePNG(mock.Anything).Return(nil, errors.New("data too long"))

	got, err := f.service.RecipeQRCode(ctx, recipe.ID.String())

	assert.Nil(t, got)
	assert.Error(t, err)
}
