// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"recipeme/internal/delivery/http/response"
	"recipeme/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
)

// PageHandler serves static pages.
type PageHandler struct {
	responder *response.Responder
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(responder *response.Responder) *PageHandler {
	return &PageHandler{responder: responder}
}

// About renders the about page.
func (h *PageHandler) About(c echo.Context) error {
	return h.responder.Page(c, http.StatusOK, view.PageAbout, &view.Page{Title: "About"})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
