package handler

import (
	"net/http"

	"recipeme/internal/delivery/http/response"
	"recipeme/internal/delivery/http/view"
	"recipeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler serves the recipe listing and detail pages.
type RecipeHandler struct {
	uc        usecase.RecipeUsecase
	responder *response.Responder
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, responder *response.Responder) *RecipeHandler {
	return &RecipeHandler{
		uc:        uc,
		responder: responder,
	}
}

// Home lists every recipe.
func (h *RecipeHandler) Home(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return h.responder.Page(c, http.StatusOK, view.PageIndex, &view.Page{
		Title:   "Home",
		Recipes: recipes,
	})
}

// View shows one recipe. Unknown and malformed ids surface as ErrRecipeNotFound.
func (h *RecipeHandler) View(c echo.Context) error {
	detail, err := h.uc.GetRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.responder.Page(c, http.StatusOK, view.PageViewRecipe, &view.Page{
		Title:  detail.Recipe.Name,
		Recipe: detail,
	})
}

// QRCode returns a PNG linking to the recipe page.
func (h *RecipeHandler) QRCode(c echo.Context) error {
	png, err := h.uc.RecipeQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
