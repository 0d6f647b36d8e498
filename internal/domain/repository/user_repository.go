// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipeme/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: a username to password hash mapping.
type UserRepository interface {
	// FindByUsername retrieves a single user, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. A username that is already taken yields
	// domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
