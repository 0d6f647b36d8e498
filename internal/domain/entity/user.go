// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to log in. Username is unique across all users.
type User struct {
	ID           uuid.UUID // Assigned by the application when the account is created.
	Username     string    // Login name, unique within the credential store.
	PasswordHash string    // Salted one-way hash carrying its own algorithm tag.
	CreatedAt    time.Time // Timestamp of the sign-up.
}
