// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"recipeme/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler   *handler.PageHandler
	AuthHandler   *handler.AuthHandler
	RecipeHandler *handler.RecipeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler   *handler.PageHandler
	authHandler   *handler.AuthHandler
	recipeHandler *handler.RecipeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:   params.PageHandler,
		authHandler:   params.AuthHandler,
		recipeHandler: params.RecipeHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Pages
	e.GET("/", r.recipeHandler.Home)
	e.Match(readMethods, "/home", r.recipeHandler.Home)
	e.GET("/about", r.pageHandler.About)

	// Auth
	e.GET("/sign_up", r.authHandler.SignUpForm)
	e.POST("/sign_up", r.authHandler.SignUp)
	e.GET("/login", r.authHandler.LoginForm)
	e.POST("/login", r.authHandler.Login)
	e.GET("/logout", r.authHandler.Logout)

	// Recipes
	recipeGroup := e.Group("/recipe")
	{
		recipeGroup.Match(readMethods, "/:id", r.recipeHandler.View)
		recipeGroup.GET("/:id/qrcode", r.recipeHandler.QRCode)
	}
}

// readMethods are accepted on pages that only display data.
var readMethods = []string{http.MethodGet, http.MethodPost}

// FormRoutes lists the paths whose POSTs change state and therefore carry a CSRF token.
var FormRoutes = []string{"/sign_up", "/login"}
