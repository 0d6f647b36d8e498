package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArgon2Params = Argon2Params{
	Memory:      8 * 1024,
	Time:        1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))
	assert.NotContains(t, hash, "secret1")

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
}

func TestArgon2Hasher_CheckRejectsMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "bcrypt hash", hash: "$2a$10$abcdefghijklmnopqrstuu"},
		{name: "missing segments", hash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA"},
		{name: "bad version", hash: "$argon2id$v=16$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$memory$c2FsdHNhbHRzYWx0$aGFzaA"},
		{name: "memory below floor", hash: "$argon2id$v=19$m=1,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "memory above ceiling", hash: "$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "zero time", hash: "$argon2id$v=19$m=8192,t=0,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "time above ceiling", hash: "$argon2id$v=19$m=8192,t=1000,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "zero parallelism", hash: "$argon2id$v=19$m=8192,t=1,p=0$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "parallelism overflow", hash: "$argon2id$v=19$m=8192,t=1,p=300$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "short salt", hash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "short key", hash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2s"},
		{name: "long key", hash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s"},
		{name: "bad salt", hash: "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Check("secret1", tt.hash))
		})
	}
}
