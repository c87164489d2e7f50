package admin

import (
	"context"

	"unitutor/internal/domain"
)

type SessionReader interface {
	GetAll(ctx context.Context) ([]domain.Session, error)
	GetByStatus(ctx context.Context, status domain.SessionStatus) ([]domain.Session, error)
	CountByStatus(ctx context.Context, status domain.SessionStatus) (int64, error)
	CountClosedForUser(ctx context.Context, userID int64) (int64, error)
}

type TicketStore interface {
	GetAll(ctx context.Context) ([]domain.Ticket, error)
	Update(ctx context.Context, id int64, status domain.TicketStatus, adminResponse string) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type ProfileReader interface {
	GetByUserAndRole(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error)
	CountByRole(ctx context.Context, role domain.ProfileRole) (int64, error)
}

type RatingReader interface {
	AveragePublicScore(ctx context.Context, targetID int64) (float64, error)
}
