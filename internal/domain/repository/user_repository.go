// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/errors"
)

// ErrUserNotFound is returned by FindByEmail when no row matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user store: a table keyed by unique email.
type UserRepository interface {
	// FindByEmail returns the single row whose email matches exactly, or ErrUserNotFound.
	// Case sensitivity is whatever the store's collation defines.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts user and fills in the store-assigned ID and CreatedAt.
	// A unique-email violation is reported as domain ErrUserAlreadyExists; the
	// store constraint, not any earlier lookup, decides duplicates.
	Create(ctx context.Context, user *entity.User) error
}
