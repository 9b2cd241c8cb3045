package domain

import "time"

// Role is a user's role in the system.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// ParseRole returns the Role for s, or false if s is not a valid role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleManager:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      Role      `json:"role" db:"role"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
