package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// PreferredRoles records which side(s) of the marketplace a user signed up
// for. The stored account role (user/admin) is a separate concern.
type PreferredRoles string

const (
	PreferStudent PreferredRoles = "student"
	PreferTutor   PreferredRoles = "tutor"
	PreferBoth    PreferredRoles = "both"
)

type User struct {
	ID             int64          `json:"id"`
	OpenID         string         `json:"open_id"`
	Name           string         `json:"name"`
	Email          string         `json:"email" validate:"omitempty,email"`
	PasswordHash   string         `json:"-"`
	Role           UserRole       `json:"role"`
	PreferredRoles PreferredRoles `json:"preferred_roles,omitempty"`
	LastSignedIn   time.Time      `json:"last_signed_in"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
