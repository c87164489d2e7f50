package auth

import (
	"context"

	"unitutor/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePreferredRoles(ctx context.Context, userID int64, roles domain.PreferredRoles) error
	TouchLastSignedIn(ctx context.Context, userID int64) error
}
