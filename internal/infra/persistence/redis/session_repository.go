package redis

import (
	"context"
	"encoding/json"
	"time"

	"recipeme/config"
	"recipeme/internal/domain/entity"
	"recipeme/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix     = "session:"
	sessionRecordVersion = 1
)

// sessionRecord is the JSON document stored per session.
type sessionRecord struct {
	Version   int             `json:"v"`
	Username  string          `json:"username,omitempty"`
	Logged    bool            `json:"logged,omitempty"`
	Notices   []entity.Notice `json:"notices,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type sessionRepository struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewSessionRepository stores sessions under "<keyPrefix>session:<id>".
func NewSessionRepository(client *goredis.Client, cfg *config.Config) repository.SessionRepository {
	return newSessionRepository(client, cfg.Redis.KeyPrefix)
}

func newSessionRepository(client *goredis.Client, keyPrefix string) *sessionRepository {
	return &sessionRepository{
		client: client,
		prefix: keyPrefix + sessionKeyPrefix,
		now:    time.Now,
	}
}

func (r *sessionRepository) key(id string) string {
	return r.prefix + id
}

// Find loads a session. Unknown, expired and unreadable records all count as not found.
func (r *sessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, repository.ErrSessionNotFound
	}

	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil || record.Version != sessionRecordVersion {
		return nil, repository.ErrSessionNotFound
	}

	return entity.RestoreSession(id, record.Username, record.Logged, record.Notices, record.CreatedAt), nil
}

// Save writes the session with a fresh time to live.
func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now().UTC()
	}

	raw, err := json.Marshal(sessionRecord{
		Version:   sessionRecordVersion,
		Username:  session.Username,
		Logged:    session.Logged,
		Notices:   session.Notices,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := r.client.Set(ctx, r.key(session.ID), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Delete removes the session record; unknown ids are ignored.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
