package entity

import (
	"slices"
	"time"
)

// Session is the per-client state carried across requests.
// Username and Logged are only set while the client is authenticated.
type Session struct {
	ID        string    // Identifier of the server-side record; empty until first persisted.
	Username  string    // Authenticated username.
	Logged    bool      // True only while authenticated.
	Notices   []Notice  // Flash notices queued for the next rendered page.
	CreatedAt time.Time // When the record was first written.

	modified   bool
	previousID string
}

// NewSession returns an empty, anonymous session.
func NewSession() *Session {
	return &Session{}
}

// RestoreSession rebuilds a session loaded from the session store.
func RestoreSession(id, username string, logged bool, notices []Notice, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		Username:  username,
		Logged:    logged,
		Notices:   notices,
		CreatedAt: createdAt,
	}
}

// Authenticate records username as the logged in user, overwriting any previous identity.
// A persisted session is detached from its record so the next save issues a new ID.
func (s *Session) Authenticate(username string) {
	if s.ID != "" {
		s.previousID = s.ID
		s.ID = ""
		s.CreatedAt = time.Time{}
	}
	s.Username = username
	s.Logged = true
	s.modified = true
}

// IsAuthenticated reports whether a user is logged in on this session.
func (s *Session) IsAuthenticated() bool {
	return s.Logged && s.Username != ""
}

// Clear drops every key, queued notices included. The ID is kept so the
// backing record can be removed.
func (s *Session) Clear() {
	s.Username = ""
	s.Logged = false
	s.Notices = nil
	s.modified = true
}

// Flash queues a notice for the next rendered page.
func (s *Session) Flash(notices ...Notice) {
	if len(notices) == 0 {
		return
	}
	s.Notices = append(s.Notices, notices...)
	s.modified = true
}

// PopNotices returns and removes all queued notices.
func (s *Session) PopNotices() []Notice {
	if len(s.Notices) == 0 {
		return nil
	}
	notices := slices.Clone(s.Notices)
	s.Notices = nil
	s.modified = true

	return notices
}

// IsEmpty reports whether the session holds no keys at all.
func (s *Session) IsEmpty() bool {
	return s.Username == "" && !s.Logged && len(s.Notices) == 0
}

// IsModified reports whether the session changed since it was loaded.
func (s *Session) IsModified() bool {
	return s.modified
}

// IsPersisted reports whether a server-side record exists for the session.
func (s *Session) IsPersisted() bool {
	return s.ID != ""
}

// PreviousID returns the record ID the session was detached from by
// Authenticate, or "" when the ID was never rotated.
func (s *Session) PreviousID() string {
	return s.previousID
}
