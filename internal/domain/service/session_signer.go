package service

// SessionSigner protects the session id handed to the client in a cookie.
type SessionSigner interface {
	// Sign returns an opaque, tamper-evident token for sessionID.
	Sign(sessionID string) (string, error)

	// Verify returns the session id carried by token, or an error when the
	// token was not produced by Sign with the same secret.
	Verify(token string) (string, error)
}
