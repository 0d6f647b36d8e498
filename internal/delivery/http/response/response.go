package response

import (
	"net/http"

	"recipeme/internal/delivery/http/session"
	"recipeme/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "RECIPE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// csrfContextKey is where echo's CSRF middleware leaves the token.
const csrfContextKey = "csrf"

// Responder writes HTML pages and redirects, committing the session first.
type Responder struct {
	sessions *session.Manager
}

// NewResponder is the constructor for Responder.
func NewResponder(sessions *session.Manager) *Responder {
	return &Responder{sessions: sessions}
}

// Page renders name with the session's pending notices and login state.
// Rendering consumes the notices.
func (r *Responder) Page(c echo.Context, status int, name string, page *view.Page) error {
	if page == nil {
		page = &view.Page{}
	}

	sess := session.FromContext(c)
	page.Notices = append(sess.PopNotices(), page.Notices...)
	page.Username = sess.Username
	page.Logged = sess.IsAuthenticated()
	if token, ok := c.Get(csrfContextKey).(string); ok {
		page.CSRFToken = token
	}

	if err := r.sessions.Commit(c); err != nil {
		return err
	}

	return errors.WithStack(c.Render(status, name, page))
}

// Redirect sends a 302 to location after committing the session.
func (r *Responder) Redirect(c echo.Context, location string) error {
	if err := r.sessions.Commit(c); err != nil {
		return err
	}

	return errors.WithStack(c.Redirect(http.StatusFound, location))
}
