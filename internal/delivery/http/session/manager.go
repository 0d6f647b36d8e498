// Package session binds entity.Session to HTTP requests through a signed cookie
// and the session repository.
package session

import (
	"log/slog"
	"net/http"
	"time"

	"recipeme/config"
	deliverycontext "recipeme/internal/delivery/context"
	"recipeme/internal/domain/entity"
	domainerrors "recipeme/internal/domain/errors"
	"recipeme/internal/domain/repository"
	"recipeme/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contextKey = "session"

// Manager loads the session at the start of a request and commits it before the response.
type Manager struct {
	repo       repository.SessionRepository
	signer     service.SessionSigner
	cookieName string
	maxAge     time.Duration
	secure     bool
	logger     *slog.Logger
}

// NewManager is the constructor for Manager.
func NewManager(repo repository.SessionRepository, signer service.SessionSigner, cfg *config.Config, logger *slog.Logger) *Manager {
	return &Manager{
		repo:       repo,
		signer:     signer,
		cookieName: cfg.Session.CookieName,
		maxAge:     cfg.Session.MaxAge,
		secure:     cfg.Session.Secure,
		logger:     logger,
	}
}

// Load is echo middleware attaching the client's session to the context. A
// missing, forged or expired cookie yields a fresh anonymous session.
func (m *Manager) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.load(c)
		if err != nil {
			return err
		}
		c.Set(contextKey, sess)

		return next(c)
	}
}

func (m *Manager) load(c echo.Context) (*entity.Session, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return entity.NewSession(), nil
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	sessionID, err := m.signer.Verify(cookie.Value)
	if err != nil {
		log.Debug("Discarding session cookie", slog.Any("error", err))

		return entity.NewSession(), nil
	}

	sess, err := m.repo.Find(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return entity.NewSession(), nil
		}
		log.Error("Failed to load session", slog.Any("error", err))

		return nil, domainerrors.ErrSessionUnavailable.WrapMessage(err.Error())
	}

	return sess, nil
}

// FromContext returns the session of the current request. Outside the Load
// middleware a fresh session is attached and returned.
func FromContext(c echo.Context) *entity.Session {
	if sess, ok := c.Get(contextKey).(*entity.Session); ok && sess != nil {
		return sess
	}

	sess := entity.NewSession()
	c.Set(contextKey, sess)

	return sess
}

// Commit persists the request's session changes. It must run before the
// response is written because it may set a cookie.
//   - untouched sessions write nothing;
//   - a non-empty modified session is saved and its cookie reissued, and a
//     record left behind by a login rotation is deleted;
//   - a session emptied by the request loses its record and cookie.
func (m *Manager) Commit(c echo.Context) error {
	sess := FromContext(c)
	if !sess.IsModified() {
		return nil
	}

	ctx := c.Request().Context()

	if sess.IsEmpty() {
		recordID := sess.ID
		if recordID == "" {
			recordID = sess.PreviousID()
		}
		if recordID == "" {
			return nil
		}
		if err := m.repo.Delete(ctx, recordID); err != nil {
			return domainerrors.ErrSessionUnavailable.WrapMessage(err.Error())
		}
		c.SetCookie(m.expiredCookie())

		return nil
	}

	if err := m.repo.Save(ctx, sess, m.maxAge); err != nil {
		return domainerrors.ErrSessionUnavailable.WrapMessage(err.Error())
	}

	// The cookie no longer references the old record; a failed delete leaves it to expire.
	if previousID := sess.PreviousID(); previousID != "" && previousID != sess.ID {
		if err := m.repo.Delete(ctx, previousID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).
				Warn("Failed to delete rotated session", slog.String("sessionID", previousID), slog.Any("error", err))
		}
	}

	token, err := m.signer.Sign(sess.ID)
	if err != nil {
		return errors.Wrap(err, "failed to sign session cookie")
	}
	c.SetCookie(m.cookie(token))

	return nil
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		Expires:  time.Now().Add(m.maxAge),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
