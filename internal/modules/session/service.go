package session

import (
	"context"
	"errors"
	"time"

	"unitutor/internal/domain"
	"unitutor/internal/pkg/timewindow"
	"unitutor/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	sessions SessionRepository
	users    UserGetter
	now      func() time.Time
}

func NewService(sessions SessionRepository, users UserGetter) *Service {
	return &Service{
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
}

// Create books a new PENDING session for the student. The slot must start
// outside the booking lead time and must not overlap any of the tutor's
// PENDING or CONFIRMED sessions.
func (s *Service) Create(ctx context.Context, studentID int64, req CreateSessionRequest) (*domain.Session, error) {
	if req.TutorID == studentID {
		return nil, ErrSelfBooking
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if timewindow.WithinFourHours(s.now(), req.StartTime) {
		return nil, ErrTooSoon
	}

	if _, err := s.users.GetByID(ctx, req.TutorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.sessions.GetActiveForTutor(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}
	if HasConflict(req.StartTime, req.EndTime, existing) {
		return nil, ErrSlotTaken
	}

	sess := &domain.Session{
		StudentID: studentID,
		TutorID:   req.TutorID,
		Course:    req.Course,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.SessionPending,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return sess, nil
}

// Confirm moves PENDING to CONFIRMED. Only the tutor may confirm; the
// status swap is conditional so a lost race surfaces as ErrInvalidStatus.
func (s *Service) Confirm(ctx context.Context, sessionID, actorID int64) (*domain.Session, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.TutorID != actorID {
		return nil, ErrForbidden
	}
	if sess.Status != domain.SessionPending {
		return nil, ErrInvalidStatus
	}

	ok, err := s.sessions.UpdateStatusIf(ctx, sessionID, domain.SessionPending, domain.SessionConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStatus
	}
	return s.get(ctx, sessionID)
}

// Cancel moves PENDING or CONFIRMED to CANCELLED. Either party may cancel
// up to the cancellation lead time before the start.
func (s *Service) Cancel(ctx context.Context, sessionID, actorID int64, reason string) (*domain.Session, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsParty(actorID) {
		return nil, ErrForbidden
	}
	if sess.Status != domain.SessionPending && sess.Status != domain.SessionConfirmed {
		return nil, ErrInvalidStatus
	}
	if timewindow.WithinTwelveHours(s.now(), sess.StartTime) {
		return nil, ErrTooLate
	}

	ok, err := s.sessions.Cancel(ctx, sessionID, actorID, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStatus
	}
	return s.get(ctx, sessionID)
}

// MarkComplete sets the caller's completion flag once the session has
// started. When the second party completes, the session moves to
// PENDING_RATING. Repeated calls by the same party are no-ops.
func (s *Service) MarkComplete(ctx context.Context, sessionID, actorID int64) (*domain.Session, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsParty(actorID) {
		return nil, ErrForbidden
	}
	if sess.Status != domain.SessionConfirmed {
		return nil, ErrInvalidStatus
	}
	if s.now().Before(sess.StartTime) {
		return nil, ErrNotStarted
	}

	updated, err := s.sessions.MarkCompleted(ctx, sessionID, sess.StudentID == actorID)
	if err != nil {
		if errors.Is(err, repository.ErrWrongStatus) {
			return nil, ErrInvalidStatus
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// List returns the user's sessions, newest first, with party names.
func (s *Service) List(ctx context.Context, userID int64) ([]SessionDetails, error) {
	sessions, err := s.sessions.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]SessionDetails, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, s.withNames(ctx, sess))
	}
	return out, nil
}

// Get returns one session; only its parties may see it.
func (s *Service) Get(ctx context.Context, sessionID, userID int64) (*SessionDetails, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsParty(userID) {
		return nil, ErrForbidden
	}
	d := s.withNames(ctx, *sess)
	return &d, nil
}

func (s *Service) get(ctx context.Context, sessionID int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) withNames(ctx context.Context, sess domain.Session) SessionDetails {
	d := SessionDetails{Session: sess}
	if u, err := s.users.GetByID(ctx, sess.StudentID); err == nil {
		d.StudentName = u.Name
	}
	if u, err := s.users.GetByID(ctx, sess.TutorID); err == nil {
		d.TutorName = u.Name
	}
	return d
}
