package entities

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw role name into a Role, rejecting anything outside the known set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a user entity in the database
type User struct {
	ID           string    `db:"user_id" json:"id"` // UUID
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // Don't expose password hash in JSON
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Identity is the authenticated caller, decoded from a session token.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// CanAccess reports whether the identity may read or delete a resource owned by ownerID.
func (i Identity) CanAccess(ownerID string) bool {
	return i.Role.IsAdmin() || i.UserID == ownerID
}
