package profile

import (
	"context"

	"unitutor/internal/domain"
)

type ProfileRepository interface {
	GetByUserAndRole(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
	UpdateAvailability(ctx context.Context, userID int64, role domain.ProfileRole, slots []domain.AvailabilitySlot) error
}
