package auth

import (
	"strings"

	"recipeme/config"
	"recipeme/internal/domain/service"
)

// passwordHasher hashes with the configured algorithm and verifies any
// supported hash by its algorithm tag, so switching algorithms keeps
// existing accounts working.
type passwordHasher struct {
	primary service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.hasher.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	algorithm := "bcrypt"
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		if cfg.Auth.Hasher != "" {
			algorithm = cfg.Auth.Hasher
		}
	}

	h := &passwordHasher{
		bcrypt: NewBcryptHasherWithCost(cost),
		argon2: NewArgon2Hasher(DefaultArgon2Params),
	}
	h.primary = h.bcrypt
	if algorithm == "argon2id" {
		h.primary = h.argon2
	}

	return h
}

func (h *passwordHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *passwordHasher) Check(password, hash string) bool {
	switch {
	case strings.HasPrefix(hash, argon2Prefix):
		return h.argon2.Check(password, hash)
	case strings.HasPrefix(hash, bcryptPrefix):
		return h.bcrypt.Check(password, hash)
	default:
		return false
	}
}
