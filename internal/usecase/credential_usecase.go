// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// AuthenticateUserInput carries the credentials presented by a caller.
type AuthenticateUserInput struct {
	Email    string
	Password string
}

// CreateUserInput defines the data required to create an account.
// An empty Role means entity.DefaultRole.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// CredentialUsecase defines the credential operations the delivery layer depends on.
type CredentialUsecase interface {
	// HashPassword derives a salted bcrypt digest from plaintext.
	HashPassword(ctx context.Context, plaintext string) (string, error)

	// ComparePassword reports whether plaintext matches digest. A mismatch is
	// (false, nil); an error means the comparison could not be performed.
	ComparePassword(ctx context.Context, plaintext, digest string) (bool, error)

	// AuthenticateUser verifies the credentials and returns the user without
	// its password digest.
	AuthenticateUser(ctx context.Context, input *AuthenticateUserInput) (*entity.SafeUser, error)

	// CreateUser stores a new account and returns its public projection.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.SafeUser, error)
}
