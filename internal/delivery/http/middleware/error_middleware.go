package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "recipeme/internal/delivery/context"
	"recipeme/internal/delivery/http/response"
	"recipeme/internal/delivery/http/session"
	"recipeme/internal/delivery/http/view"
	domainerrors "recipeme/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

type errorView struct {
	status  int
	code    string
	message string
	details string
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Browsers get
// the error page; JSON clients and the health probe get a JSON body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ev := m.classify(err, c)

	if c.Request().Method == http.MethodHead {
		m.write(c, c.NoContent(ev.status))

		return
	}

	if wantsJSON(c) {
		m.write(c, response.Error(c, ev.status, ev.code, ev.message, ev.details))

		return
	}

	sess := session.FromContext(c)
	page := &view.Page{
		Title:    http.StatusText(ev.status),
		Username: sess.Username,
		Logged:   sess.IsAuthenticated(),
		Error:    &view.ErrorInfo{Code: ev.status, Message: ev.message},
	}
	if renderErr := c.Render(ev.status, view.PageError, page); renderErr != nil {
		m.log(c).Error("Failed to render error page", slog.Any("error", renderErr))
		m.write(c, c.String(ev.status, ev.message))
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) errorView {
	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		return errorView{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: appErr.Details(),
		}
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		if httpErr.Code == http.StatusNotFound {
			message = domainerrors.ErrNotFound.Message()
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		return errorView{
			status:  httpErr.Code,
			code:    "HTTP_ERROR",
			message: message,
		}
	}

	// Default to internal error, log error and return generic error
	m.logUnhandled(c, err)

	return errorView{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
	}
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.log(c).Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func wantsJSON(c echo.Context) bool {
	if c.Path() == "/health" {
		return true
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
