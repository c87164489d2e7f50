package profile

import (
	"context"
	"errors"
	"strings"

	"unitutor/internal/domain"
	"unitutor/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

// Save creates or updates the caller's profile for one marketplace role.
// Tutors must carry a bio; students may leave it empty.
func (s *Service) Save(ctx context.Context, userID int64, req SaveProfileRequest) (*domain.Profile, error) {
	role := domain.ProfileRole(req.Role)

	if role == domain.ProfileTutor && strings.TrimSpace(req.Bio) == "" {
		return nil, ErrBioNeeded
	}
	if req.PriceMax < req.PriceMin {
		return nil, ErrValidation
	}
	if err := validateSlots(req.Availability); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		UserID:       userID,
		UserRole:     role,
		Age:          req.Age,
		Year:         req.Year,
		Major:        req.Major,
		Bio:          strings.TrimSpace(req.Bio),
		PriceMin:     req.PriceMin,
		PriceMax:     req.PriceMax,
		Courses:      req.Courses,
		Availability: req.Availability,
		ContactInfo:  req.ContactInfo,
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserAndRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateAvailability replaces the weekly grid without touching the rest of
// the profile. The profile must already exist.
func (s *Service) UpdateAvailability(ctx context.Context, userID int64, req UpdateAvailabilityRequest) error {
	if err := validateSlots(req.Availability); err != nil {
		return err
	}
	err := s.profiles.UpdateAvailability(ctx, userID, domain.ProfileRole(req.Role), req.Availability)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func validateSlots(slots []domain.AvailabilitySlot) error {
	for i := range slots {
		if fields := validator.Validate(slots[i]); fields != nil {
			return ErrValidation
		}
	}
	return nil
}
