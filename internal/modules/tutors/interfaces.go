package tutors

import (
	"context"

	"unitutor/internal/domain"
)

type ProfileReader interface {
	GetTutorProfiles(ctx context.Context) ([]domain.Profile, error)
	GetByUserAndRole(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error)
	CountByRole(ctx context.Context, role domain.ProfileRole) (int64, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RatingReader interface {
	GetForTarget(ctx context.Context, targetID int64, visibility *domain.RatingVisibility) ([]domain.Rating, error)
	AveragePublicScore(ctx context.Context, targetID int64) (float64, error)
}
