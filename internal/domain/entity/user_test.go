package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Safe(t *testing.T) {
	u := &User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$digest",
		Role:         RoleAdmin,
		CreatedAt:    time.Now(),
	}

	safe := u.Safe()

	assert.Equal(t, u.ID, safe.ID)
	assert.Equal(t, u.Name, safe.Name)
	assert.Equal(t, u.Email, safe.Email)
	assert.Equal(t, u.Role, safe.Role)
	assert.Equal(t, u.CreatedAt, safe.CreatedAt)

	raw, err := json.Marshal(safe)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "digest")

	var nilUser *User
	assert.Nil(t, nilUser.Safe())
}

func TestUser_PasswordHashNotSerialised(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@b.c", PasswordHash: "$2a$10$digest"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "digest")
}

func TestRole(t *testing.T) {
	assert.Equal(t, RoleUser, Role("").OrDefault())
	assert.Equal(t, RoleAdmin, RoleAdmin.OrDefault())
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.False(t, Role("").IsValid())
}
