package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the access level of a user
type Role string

const (
	RoleClient     Role = "client"
	RoleSuperadmin Role = "superadmin"
)

// User represents an authenticated account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new client user. Accounts start inactive and stay
// locked out until a superadmin activates the company.
func NewUser(email, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     role == RoleSuperadmin,
		CreatedAt:    time.Now().UTC(),
	}
}

// Caller is the resolved identity attached to every request by the
// auth middleware. Core operations never see raw credentials.
type Caller struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller holds the administrative role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleSuperadmin
}

// CanAccess is the single ownership predicate applied to every
// read-detail and mutating operation: admins act on anything, everyone
// else only on resources they own.
func (c Caller) CanAccess(ownerID string) bool {
	return c.IsAdmin() || c.UserID == ownerID
}
