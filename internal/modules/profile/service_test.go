package profile

import (
	"context"
	"testing"

	"unitutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByUserAndRole(ctx context.Context, userID int64, role domain.ProfileRole) (*domain.Profile, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProfileRepo) UpdateAvailability(ctx context.Context, userID int64, role domain.ProfileRole, slots []domain.AvailabilitySlot) error {
	args := m.Called(ctx, userID, role, slots)
	return args.Error(0)
}

func validTutorReq() SaveProfileRequest {
	return SaveProfileRequest{
		Role:     "tutor",
		Age:      21,
		Year:     "Senior",
		Major:    "Mathematics",
		Bio:      "Calculus tutor.",
		PriceMin: 20,
		PriceMax: 35,
		Courses:  []string{"MATH 120"},
	}
}

func TestSaveTutorRequiresBio(t *testing.T) {
	svc := NewService(new(mockProfileRepo))

	req := validTutorReq()
	req.Bio = "   "
	_, err := svc.Save(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrBioNeeded)
}

func TestSaveStudentWithoutBio(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewService(repo)

	req := validTutorReq()
	req.Role = "student"
	req.Bio = ""
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Save(context.Background(), 1, req)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProfileStudent, p.UserRole)
}

func TestSaveRejectsInvertedPriceRange(t *testing.T) {
	svc := NewService(new(mockProfileRepo))

	req := validTutorReq()
	req.PriceMin = 50
	req.PriceMax = 20
	_, err := svc.Save(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveRejectsBadAvailabilitySlot(t *testing.T) {
	svc := NewService(new(mockProfileRepo))

	req := validTutorReq()
	req.Availability = []domain.AvailabilitySlot{
		{WeekIndex: 0, DayOfWeek: 9, HourBlock: "16:00-17:00"},
	}
	_, err := svc.Save(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAvailabilityMissingProfile(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewService(repo)

	slots := []domain.AvailabilitySlot{
		{WeekIndex: 0, DayOfWeek: 1, HourBlock: "10:00-11:00", IsBookable: true},
	}
	repo.On("UpdateAvailability", mock.Anything, int64(1), domain.ProfileTutor, slots).
		Return(gorm.ErrRecordNotFound)

	err := svc.UpdateAvailability(context.Background(), 1, UpdateAvailabilityRequest{
		Role:         "tutor",
		Availability: slots,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
