// Package entity contains the core business objects of the service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account row as held by the user store.
// PasswordHash only ever contains a bcrypt digest and is never serialised.
type User struct {
	ID           uuid.UUID // Assigned by the store on creation.
	Name         string    // Display name, free text.
	Email        string    // Unique business key used for lookups.
	PasswordHash string    `json:"-"`
	Role         Role
	CreatedAt    time.Time // Assigned by the store at insert time.
}

// SafeUser is the public projection of a User. It has no password field, so
// values returned to callers cannot carry the digest.
type SafeUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Safe strips the password digest from u.
func (u *User) Safe() *SafeUser {
	if u == nil {
		return nil
	}

	return &SafeUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
