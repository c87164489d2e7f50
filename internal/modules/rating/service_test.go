package rating

import (
	"context"
	"testing"

	"unitutor/internal/domain"
	"unitutor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRatingStore struct {
	mock.Mock
}

func (m *mockRatingStore) SubmitForSession(ctx context.Context, r *domain.Rating, raterIsStudent bool) (bool, error) {
	args := m.Called(ctx, r, raterIsStudent)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingStore) SubmitForCancellation(ctx context.Context, r *domain.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRatingStore) GetForTarget(ctx context.Context, targetID int64, visibility *domain.RatingVisibility) ([]domain.Rating, error) {
	args := m.Called(ctx, targetID, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingStore) AveragePublicScore(ctx context.Context, targetID int64) (float64, error) {
	args := m.Called(ctx, targetID)
	return args.Get(0).(float64), args.Error(1)
}

type mockSessionGetter struct {
	mock.Mock
}

func (m *mockSessionGetter) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func pendingRatingSession() *domain.Session {
	return &domain.Session{
		ID: 7, StudentID: 1, TutorID: 2,
		Status:           domain.SessionPendingRating,
		StudentCompleted: true, TutorCompleted: true,
	}
}

func TestSubmitStudentRatingIsPublic(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)
	store.On("SubmitForSession", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.Visibility == domain.RatingPublic && r.RaterID == 1
	}), true).Return(false, nil)

	closed, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{
		SessionID: 7, TargetID: 2, Score: 5,
	})
	assert.NoError(t, err)
	assert.False(t, closed)
	store.AssertExpectations(t)
}

func TestSubmitTutorRatingIsPrivate(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)
	store.On("SubmitForSession", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.Visibility == domain.RatingPrivate && r.RaterID == 2
	}), false).Return(true, nil)

	closed, err := svc.Submit(context.Background(), 2, SubmitRatingRequest{
		SessionID: 7, TargetID: 1, Score: 4,
	})
	assert.NoError(t, err)
	assert.True(t, closed)
}

func TestSubmitRejectsSelfRating(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{
		SessionID: 7, TargetID: 1, Score: 5,
	})
	assert.ErrorIs(t, err, ErrSelfRating)
}

func TestSubmitRejectsNonParty(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)

	_, err := svc.Submit(context.Background(), 99, SubmitRatingRequest{
		SessionID: 7, TargetID: 2, Score: 5,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitRejectsWrongStatus(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	sess := pendingRatingSession()
	sess.Status = domain.SessionConfirmed
	getter.On("GetByID", mock.Anything, int64(7)).Return(sess, nil)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{
		SessionID: 7, TargetID: 2, Score: 5,
	})
	assert.ErrorIs(t, err, ErrNotRatable)
}

func TestSubmitMapsDuplicateToAlreadyRated(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)
	store.On("SubmitForSession", mock.Anything, mock.Anything, true).
		Return(false, repository.ErrAlreadyRated)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{
		SessionID: 7, TargetID: 2, Score: 5,
	})
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func cancelledSession(by int64) *domain.Session {
	return &domain.Session{
		ID: 7, StudentID: 1, TutorID: 2,
		Status:      domain.SessionCancelled,
		Cancelled:   true,
		CancelledBy: &by,
	}
}

func TestRateCancellationByNonCanceller(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(cancelledSession(2), nil)
	store.On("SubmitForCancellation", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.TargetID == 2 && r.Visibility == domain.RatingPublic
	})).Return(nil)

	err := svc.RateCancellation(context.Background(), 1, RateCancellationRequest{
		SessionID: 7, Score: 2,
	})
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRateCancellationRejectsCanceller(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(cancelledSession(2), nil)

	err := svc.RateCancellation(context.Background(), 2, RateCancellationRequest{
		SessionID: 7, Score: 5,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRateCancellationRejectsRepeat(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	sess := cancelledSession(2)
	sess.CancellationRated = true
	getter.On("GetByID", mock.Anything, int64(7)).Return(sess, nil)

	err := svc.RateCancellation(context.Background(), 1, RateCancellationRequest{
		SessionID: 7, Score: 3,
	})
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestRateCancellationRequiresCancelledStatus(t *testing.T) {
	store := new(mockRatingStore)
	getter := new(mockSessionGetter)
	svc := NewService(store, getter)

	getter.On("GetByID", mock.Anything, int64(7)).Return(pendingRatingSession(), nil)

	err := svc.RateCancellation(context.Background(), 1, RateCancellationRequest{
		SessionID: 7, Score: 3,
	})
	assert.ErrorIs(t, err, ErrNotCancelled)
}
