package repository

import (
	"context"
	"errors"
	"time"

	"recipeme/internal/domain/entity"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps session records outside the process.
type SessionRepository interface {
	// Find loads the session stored under id, or ErrSessionNotFound.
	Find(ctx context.Context, id string) (*entity.Session, error)

	// Save writes the session and resets its time to live. A session without
	// an ID is assigned a new one.
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Delete removes the record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
