package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_AuthenticateDetachesPersistedRecord(t *testing.T) {
	sess := RestoreSession("sid-1", "", false, nil, time.Now())

	sess.Authenticate("alice")

	assert.False(t, sess.IsPersisted())
	assert.True(t, sess.CreatedAt.IsZero())
	assert.Equal(t, "sid-1", sess.PreviousID())
	assert.True(t, sess.IsAuthenticated())
	assert.True(t, sess.IsModified())
}

func TestSession_AuthenticateFreshSession(t *testing.T) {
	sess := NewSession()

	sess.Authenticate("alice")

	assert.Empty(t, sess.ID)
	assert.Empty(t, sess.PreviousID())
	assert.Equal(t, "alice", sess.Username)
}
