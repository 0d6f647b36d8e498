package handler

import (
	"net/http"

	"recipeme/internal/delivery/http/response"
	"recipeme/internal/delivery/http/session"
	"recipeme/internal/delivery/http/view"
	"recipeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the sign-up, login and logout pages.
type AuthHandler struct {
	uc        usecase.AuthUsecase
	responder *response.Responder
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, responder *response.Responder) *AuthHandler {
	return &AuthHandler{
		uc:        uc,
		responder: responder,
	}
}

// SignUpForm renders the empty sign-up form.
func (h *AuthHandler) SignUpForm(c echo.Context) error {
	return h.responder.Page(c, http.StatusOK, view.PageSignUp, &view.Page{Title: "Sign Up"})
}

// SignUp handles the submitted sign-up form.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sign up form")
	}

	outcome, err := h.uc.SignUp(c.Request().Context(), session.FromContext(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, outcome, &view.Page{
		Title: "Sign Up",
		Form:  map[string]string{"username": input.Username},
	}, view.PageSignUp)
}

// LoginForm renders the empty login form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return h.responder.Page(c, http.StatusOK, view.PageLogin, &view.Page{Title: "Login"})
}

// Login handles the submitted login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login form")
	}

	outcome, err := h.uc.Login(c.Request().Context(), session.FromContext(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, outcome, &view.Page{
		Title: "Login",
		Form:  map[string]string{"username": input.Username},
	}, view.PageLogin)
}

// Logout clears the session and returns to the home page.
func (h *AuthHandler) Logout(c echo.Context) error {
	outcome := h.uc.Logout(c.Request().Context(), session.FromContext(c))

	return h.respond(c, outcome, nil, "")
}

// respond re-renders formPage for an invalid form and otherwise flashes the
// outcome's notices before redirecting.
func (h *AuthHandler) respond(c echo.Context, outcome *usecase.Outcome, page *view.Page, formPage string) error {
	if outcome.Kind == usecase.OutcomeInvalid {
		page.FieldErrors = outcome.FieldErrors

		return h.responder.Page(c, http.StatusUnprocessableEntity, formPage, page)
	}

	session.FromContext(c).Flash(outcome.Notices...)

	return h.responder.Redirect(c, outcome.Redirect)
}
