package auth

import "unitutor/internal/domain"

type RegisterRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	PreferredRoles string `json:"preferred_roles" binding:"omitempty,oneof=student tutor both"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRolesRequest struct {
	PreferredRoles string `json:"preferred_roles" binding:"required,oneof=student tutor both"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
