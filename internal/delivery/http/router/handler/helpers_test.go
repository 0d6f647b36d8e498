package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"recipeme/config"
	"recipeme/internal/delivery/http/response"
	"recipeme/internal/delivery/http/session"
	"recipeme/internal/delivery/http/view"
	"recipeme/internal/domain/entity"
	mockRepo "recipeme/internal/mocks/repository"
	mockSvc "recipeme/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type handlerEnv struct {
	echo      *echo.Echo
	responder *response.Responder
	sessions  *mockRepo.MockSessionRepository
	signer    *mockSvc.MockSessionSigner
}

func newHandlerEnv(t *testing.T) handlerEnv {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	env := handlerEnv{
		echo:     echo.New(),
		sessions: mockRepo.NewMockSessionRepository(t),
		signer:   mockSvc.NewMockSessionSigner(t),
	}
	env.echo.Renderer = renderer

	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "session", MaxAge: time.Hour}}
	manager := session.NewManager(env.sessions, env.signer, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.responder = response.NewResponder(manager)

	return env
}

// request builds a context for method and target. A non-nil form is sent
// url-encoded; sess is attached as if the session middleware had loaded it.
func (env handlerEnv) request(method, target string, form url.Values, sess *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if sess == nil {
		sess = entity.NewSession()
	}
	c.Set("session", sess)

	return c, rec
}

func notice(message string, category entity.NoticeCategory) entity.Notice {
	return entity.Notice{Message: message, Category: category}
}

