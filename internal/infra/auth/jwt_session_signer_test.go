package auth

import (
	"testing"
	"time"

	"recipeme/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string, ttl time.Duration) *jwtSessionSigner {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{MaxAge: ttl}}
	cfg.SecretKey.Session = secret

	signer, err := NewJWTSessionSigner(cfg)
	require.NoError(t, err)

	return signer.(*jwtSessionSigner)
}

func TestJWTSessionSigner_SignAndVerify(t *testing.T) {
	signer := newTestSigner(t, "test_session_secret_key_very_long_for_testing", time.Hour)

	token, err := signer.Sign("sid-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	sessionID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sessionID)
}

func TestJWTSessionSigner_RequiresSecret(t *testing.T) {
	_, err := NewJWTSessionSigner(&config.Config{})
	assert.Error(t, err)
}

func TestJWTSessionSigner_RejectsForeignSecret(t *testing.T) {
	signer := newTestSigner(t, "first-secret", time.Hour)
	other := newTestSigner(t, "second-secret", time.Hour)

	token, err := other.Sign("sid-1")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidSessionToken))
}

func TestJWTSessionSigner_RejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t, "secret", time.Minute)
	signer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := signer.Sign("sid-1")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidSessionToken))
}

func TestJWTSessionSigner_RejectsTamperedAndForeignTokens(t *testing.T) {
	signer := newTestSigner(t, "secret", time.Hour)

	token, err := signer.Sign("sid-1")
	require.NoError(t, err)

	_, err = signer.Verify(token + "x")
	assert.Error(t, err)

	_, err = signer.Verify("not-a-token")
	assert.Error(t, err)

	// A token for a different purpose signed with the same secret.
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:      "sid-1",
		Subject: "access",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = signer.Verify(access)
	assert.Error(t, err)
}

func TestJWTSessionSigner_RejectsTokenWithoutID(t *testing.T) {
	signer := newTestSigner(t, "secret", time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: sessionTokenType,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidSessionToken))
}
