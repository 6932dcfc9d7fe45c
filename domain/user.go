package domain

import "time"

// Role identifies which dashboard a user operates from.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleNurse Role = "nurse"
)

// KnownRole reports whether the value is one of the three platform roles.
func KnownRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleNurse:
		return true
	}
	return false
}

// User represents an account on the platform: admin, facility owner or nurse.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Timezone     string    `json:"timezone,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Active
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
