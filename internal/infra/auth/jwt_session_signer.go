package auth

import (
	"time"

	"recipeme/config"
	"recipeme/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const sessionTokenType = "session"

// ErrInvalidSessionToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidSessionToken = errors.New("invalid session token")

// jwtSessionSigner signs session ids as HS256 JWTs carried by the session cookie.
type jwtSessionSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessionSigner is the constructor for jwtSessionSigner.
func NewJWTSessionSigner(cfg *config.Config) (service.SessionSigner, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Session != nil {
		ttl = cfg.Session.MaxAge
	}

	return &jwtSessionSigner{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Sign wraps sessionID in a signed token that expires with the session.
func (s *jwtSessionSigner) Sign(sessionID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		Subject:  sessionTokenType,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the session id.
func (s *jwtSessionSigner) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(sessionTokenType),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", errors.Wrap(ErrInvalidSessionToken, "verify session token")
	}
	if claims.ID == "" {
		return "", errors.Wrap(ErrInvalidSessionToken, "session token without id")
	}

	return claims.ID, nil
}
