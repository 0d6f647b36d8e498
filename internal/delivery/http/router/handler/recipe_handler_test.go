package handler

import (
	"net/http"
	"testing"

	"recipeme/internal/domain/entity"
	domainerrors "recipeme/internal/domain/errors"
	mockUC "recipeme/internal/mocks/usecase"
	"recipeme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRecipeHandler(t *testing.T) (*RecipeHandler, *mockUC.MockRecipeUsecase, handlerEnv) {
	env := newHandlerEnv(t)
	uc := mockUC.NewMockRecipeUsecase(t)

	return NewRecipeHandler(uc, env.responder), uc, env
}

func TestRecipeHandler_Home(t *testing.T) {
	h, uc, env := createTestRecipeHandler(t)
	c, rec := env.request(http.MethodGet, "/home", nil, nil)

	uc.EXPECT().ListRecipes(mock.Anything).Return([]*entity.Recipe{
		{ID: uuid.New(), Name: "Pad Thai"},
		{ID: uuid.New(), Name: "Ramen"},
	}, nil)

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pad Thai")
	assert.Contains(t, rec.Body.String(), "Ramen")
}

func TestRecipeHandler_Home_StoreError(t *testing.T) {
	h, uc, env := createTestRecipeHandler(t)
	c, _ := env.request(http.MethodGet, "/home", nil, nil)

	uc.EXPECT().ListRecipes(mock.Anything).Return(nil, errors.New("db down"))

	assert.Error(t, h.Home(c))
}

func TestRecipeHandler_View(t *testing.T) {
	h, uc, env := createTestRecipeHandler(t)
	id := uuid.New()
	c, rec := env.request(http.MethodGet, "/recipe/"+id.String(), nil, nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().GetRecipe(mock.Anything, id.String()).Return(&usecase.RecipeDetail{
		Recipe:              &entity.Recipe{ID: id, Name: "Pad Thai", Equipment: []string{"wok"}},
		AdditionalEquipment: []string{"pan"},
	}, nil)

	require.NoError(t, h.View(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Recipe Me - Pad Thai</title>")
	assert.Contains(t, rec.Body.String(), "<li>wok</li>")
	assert.Contains(t, rec.Body.String(), "<li>pan</li>")
}

func TestRecipeHandler_View_NotFound(t *testing.T) {
	h, uc, env := createTestRecipeHandler(t)
	c, rec := env.request(http.MethodGet, "/recipe/not-a-uuid", nil, nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	uc.EXPECT().GetRecipe(mock.Anything, "not-a-uuid").
		Return(nil, domainerrors.ErrRecipeNotFound.WrapMessage("invalid recipe id"))

	err := h.View(c)

	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	assert.Empty(t, rec.Body.String())
}

func TestRecipeHandler_QRCode(t *testing.T) {
	h, uc, env := createTestRecipeHandler(t)
	id := uuid.New().String()
	c, rec := env.request(http.MethodGet, "/recipe/"+id+"/qrcode", nil, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)

	uc.EXPECT().RecipeQRCode(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	require.NoError(t, h.QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}
