package session

import (
	"context"

	"unitutor/internal/domain"
)

// SessionRepository defines the storage operations the state machine needs.
// Status changes go through conditional updates so concurrent actors cannot
// both pass the same guard.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetActiveForTutor(ctx context.Context, tutorID int64) ([]domain.Session, error)
	GetForUser(ctx context.Context, userID int64) ([]domain.Session, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.SessionStatus) (bool, error)
	Cancel(ctx context.Context, id, cancelledBy int64, reason string) (bool, error)
	MarkCompleted(ctx context.Context, id int64, byStudent bool) (*domain.Session, error)
}

// UserGetter resolves party display names.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
