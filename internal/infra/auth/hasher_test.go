package auth

import (
	"strings"
	"testing"

	"recipeme/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_UsesConfiguredAlgorithm(t *testing.T) {
	bcryptCfg := &config.Config{Auth: &config.AuthConfig{Hasher: "bcrypt", BcryptCost: bcrypt.MinCost}}
	hash, err := NewPasswordHasher(bcryptCfg).Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	argonCfg := &config.Config{Auth: &config.AuthConfig{Hasher: "argon2id"}}
	hash, err = NewPasswordHasher(argonCfg).Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, argon2Prefix))
}

func TestPasswordHasher_VerifiesEveryAlgorithm(t *testing.T) {
	hasher := NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{Hasher: "argon2id"}})

	bcryptHash, err := NewBcryptHasherWithCost(bcrypt.MinCost).Hash("secret1")
	require.NoError(t, err)
	argonHash, err := NewArgon2Hasher(testArgon2Params).Hash("secret1")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret1", bcryptHash))
	assert.True(t, hasher.Check("secret1", argonHash))
	assert.False(t, hasher.Check("secret2", bcryptHash))
	assert.False(t, hasher.Check("secret2", argonHash))
	assert.False(t, hasher.Check("secret1", "plaintext"))
}

func TestPasswordHasher_DefaultsToBcrypt(t *testing.T) {
	hasher := NewPasswordHasher(&config.Config{}).(*passwordHasher)

	assert.Same(t, hasher.bcrypt, hasher.primary)
}
