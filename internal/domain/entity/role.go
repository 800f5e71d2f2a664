package entity

// Role is the access level recorded on a user row.
type Role string

const (
	// RoleUser is the role given to accounts created without an explicit role.
	RoleUser Role = "user"
	// RoleAdmin marks administrative accounts.
	RoleAdmin Role = "admin"

	// DefaultRole is applied when a creation request leaves the role empty.
	DefaultRole = RoleUser
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// OrDefault returns r, or DefaultRole when r is empty.
func (r Role) OrDefault() Role {
	if r == "" {
		return DefaultRole
	}

	return r
}
