package rating

import (
	"context"
	"errors"

	"unitutor/internal/domain"
	"unitutor/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	ratings  RatingStore
	sessions SessionGetter
}

func NewService(ratings RatingStore, sessions SessionGetter) *Service {
	return &Service{ratings: ratings, sessions: sessions}
}

// Submit records one party's rating for a PENDING_RATING session. Student
// ratings are public, tutor ratings private. When the second rating lands
// the session closes and both profiles earn credit points.
func (s *Service) Submit(ctx context.Context, raterID int64, req SubmitRatingRequest) (bool, error) {
	sess, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return false, err
	}
	if sess.Status != domain.SessionPendingRating {
		return false, ErrNotRatable
	}
	if !sess.IsParty(raterID) {
		return false, ErrForbidden
	}
	if req.TargetID == raterID {
		return false, ErrSelfRating
	}

	isStudent := sess.StudentID == raterID
	visibility := domain.RatingPrivate
	if isStudent {
		visibility = domain.RatingPublic
	}

	r := &domain.Rating{
		SessionID:  req.SessionID,
		RaterID:    raterID,
		TargetID:   req.TargetID,
		Score:      req.Score,
		Comment:    req.Comment,
		Visibility: visibility,
	}

	closed, err := s.ratings.SubmitForSession(ctx, r, isStudent)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWrongStatus):
			return false, ErrNotRatable
		case errors.Is(err, repository.ErrAlreadyRated):
			return false, ErrAlreadyRated
		default:
			return false, err
		}
	}
	return closed, nil
}

// RateCancellation lets the non-cancelling party leave one public rating
// about whoever cancelled the session.
func (s *Service) RateCancellation(ctx context.Context, raterID int64, req RateCancellationRequest) error {
	sess, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	if sess.Status != domain.SessionCancelled {
		return ErrNotCancelled
	}
	if sess.CancelledBy == nil {
		return ErrNothingToRate
	}
	if *sess.CancelledBy == raterID {
		return ErrForbidden
	}
	if !sess.IsParty(raterID) {
		return ErrForbidden
	}
	if sess.CancellationRated {
		return ErrAlreadyRated
	}

	r := &domain.Rating{
		SessionID: req.SessionID,
		RaterID:   raterID,
		TargetID:  *sess.CancelledBy,
		Score:     req.Score,
		Comment:   req.Comment,
		// cancellation ratings are always public
		Visibility: domain.RatingPublic,
	}

	if err := s.ratings.SubmitForCancellation(ctx, r); err != nil {
		switch {
		case errors.Is(err, repository.ErrWrongStatus):
			return ErrNotCancelled
		case errors.Is(err, repository.ErrAlreadyRated):
			return ErrAlreadyRated
		default:
			return err
		}
	}
	return nil
}

// GetForUser lists ratings targeting a user, optionally filtered by
// visibility.
func (s *Service) GetForUser(ctx context.Context, targetID int64, visibility *domain.RatingVisibility) ([]domain.Rating, error) {
	return s.ratings.GetForTarget(ctx, targetID, visibility)
}

func (s *Service) getSession(ctx context.Context, sessionID int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}
