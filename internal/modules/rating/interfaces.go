package rating

import (
	"context"

	"unitutor/internal/domain"
)

// RatingStore is the transactional rating storage: submissions reconcile
// the session row and the credit award atomically.
type RatingStore interface {
	SubmitForSession(ctx context.Context, r *domain.Rating, raterIsStudent bool) (bool, error)
	SubmitForCancellation(ctx context.Context, r *domain.Rating) error
	GetForTarget(ctx context.Context, targetID int64, visibility *domain.RatingVisibility) ([]domain.Rating, error)
	AveragePublicScore(ctx context.Context, targetID int64) (float64, error)
}

type SessionGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}
