package domain

import "time"

const (
	RoleOwner        = "OWNER"
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
	RoleMember       = "MEMBER"
)

// User models an authenticated actor in the system. The subject of the
// issued JWT is always the user's email.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// KnownRole reports whether role is one of the defined system roles.
func KnownRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleReceptionist, RoleMember:
		return true
	}
	return false
}
