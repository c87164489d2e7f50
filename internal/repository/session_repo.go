package repository

import (
	"context"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	StudentID         int64      `gorm:"column:student_id;index"`
	TutorID           int64      `gorm:"column:tutor_id;index:idx_sessions_tutor_status"`
	Course            string     `gorm:"column:course;size:255"`
	StartTime         time.Time  `gorm:"column:start_time"`
	EndTime           time.Time  `gorm:"column:end_time"`
	Status            string     `gorm:"column:status;size:20;index:idx_sessions_tutor_status"`
	StudentCompleted  bool       `gorm:"column:student_completed;default:false"`
	TutorCompleted    bool       `gorm:"column:tutor_completed;default:false"`
	StudentRated      bool       `gorm:"column:student_rated;default:false"`
	TutorRated        bool       `gorm:"column:tutor_rated;default:false"`
	Cancelled         bool       `gorm:"column:cancelled;default:false"`
	CancelledBy       *int64     `gorm:"column:cancelled_by"`
	CancelReason      *string    `gorm:"column:cancel_reason;type:text"`
	CancellationRated bool       `gorm:"column:cancellation_rated;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	var reason string
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}
	return &domain.Session{
		ID:                m.ID,
		StudentID:         m.StudentID,
		TutorID:           m.TutorID,
		Course:            m.Course,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Status:            domain.SessionStatus(m.Status),
		StudentCompleted:  m.StudentCompleted,
		TutorCompleted:    m.TutorCompleted,
		StudentRated:      m.StudentRated,
		TutorRated:        m.TutorRated,
		Cancelled:         m.Cancelled,
		CancelledBy:       m.CancelledBy,
		CancelReason:      reason,
		CancellationRated: m.CancellationRated,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toSessionModel(s *domain.Session) sessionModel {
	var reason *string
	if s.CancelReason != "" {
		v := s.CancelReason
		reason = &v
	}
	return sessionModel{
		ID:                s.ID,
		StudentID:         s.StudentID,
		TutorID:           s.TutorID,
		Course:            s.Course,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Status:            string(s.Status),
		StudentCompleted:  s.StudentCompleted,
		TutorCompleted:    s.TutorCompleted,
		StudentRated:      s.StudentRated,
		TutorRated:        s.TutorRated,
		Cancelled:         s.Cancelled,
		CancelledBy:       s.CancelledBy,
		CancelReason:      reason,
		CancellationRated: s.CancellationRated,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := toSessionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

// GetActiveForTutor returns the tutor's PENDING and CONFIRMED sessions, the
// only ones that can hold a time slot.
func (r *SessionRepository) GetActiveForTutor(ctx context.Context, tutorID int64) ([]domain.Session, error) {
	var ms []sessionModel
	tx := r.db.WithContext(ctx).
		Where("tutor_id = ? AND status IN ?", tutorID,
			[]string{string(domain.SessionPending), string(domain.SessionConfirmed)}).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSessions(ms), nil
}

func (r *SessionRepository) GetForUser(ctx context.Context, userID int64) ([]domain.Session, error) {
	var ms []sessionModel
	tx := r.db.WithContext(ctx).
		Where("student_id = ? OR tutor_id = ?", userID, userID).
		Order("created_at desc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSessions(ms), nil
}

func (r *SessionRepository) GetAll(ctx context.Context) ([]domain.Session, error) {
	var ms []sessionModel
	tx := r.db.WithContext(ctx).Order("created_at desc").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSessions(ms), nil
}

func (r *SessionRepository) GetByStatus(ctx context.Context, status domain.SessionStatus) ([]domain.Session, error) {
	var ms []sessionModel
	tx := r.db.WithContext(ctx).Where("status = ?", string(status)).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSessions(ms), nil
}

// UpdateStatusIf performs a compare-and-swap on the status column so two
// concurrent actors cannot both pass the same guard.
func (r *SessionRepository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.SessionStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Cancel moves a PENDING or CONFIRMED session to CANCELLED in a single
// conditional update, recording who cancelled and why.
func (r *SessionRepository) Cancel(ctx context.Context, id, cancelledBy int64, reason string) (bool, error) {
	updates := map[string]interface{}{
		"status":       string(domain.SessionCancelled),
		"cancelled":    true,
		"cancelled_by": cancelledBy,
		"updated_at":   time.Now(),
	}
	if reason != "" {
		updates["cancel_reason"] = reason
	}
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ? AND status IN ?", id,
			[]string{string(domain.SessionPending), string(domain.SessionConfirmed)}).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkCompleted sets one party's completion flag under a row lock and flips
// the session to PENDING_RATING once both flags are set. It is idempotent
// per party.
func (r *SessionRepository) MarkCompleted(ctx context.Context, id int64, byStudent bool) (*domain.Session, error) {
	var m sessionModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, id).Error; err != nil {
			return err
		}
		if m.Status != string(domain.SessionConfirmed) {
			return ErrWrongStatus
		}

		if byStudent {
			m.StudentCompleted = true
		} else {
			m.TutorCompleted = true
		}
		if m.StudentCompleted && m.TutorCompleted {
			m.Status = string(domain.SessionPendingRating)
		}
		m.UpdatedAt = time.Now()
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainSession(m), nil
}

// SetCancellationRated flips the set-once cancellation_rated flag.
func (r *SessionRepository) SetCancellationRated(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ? AND cancellation_rated = ?", id, false).
		Updates(map[string]interface{}{
			"cancellation_rated": true,
			"updated_at":         time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CountClosedForUser backs the chat first-session trust gate.
func (r *SessionRepository) CountClosedForUser(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("(student_id = ? OR tutor_id = ?) AND status = ?",
			userID, userID, string(domain.SessionClosed)).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *SessionRepository) CountByStatus(ctx context.Context, status domain.SessionStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("status = ?", string(status)).
		Count(&cnt)
	return cnt, tx.Error
}

// FlagOverdueDisputes marks CONFIRMED sessions as DISPUTED when exactly one
// party has marked complete and the session ended before the cutoff.
func (r *SessionRepository) FlagOverdueDisputes(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("status = ? AND end_time < ? AND student_completed <> tutor_completed",
			string(domain.SessionConfirmed), cutoff).
		Updates(map[string]interface{}{
			"status":     string(domain.SessionDisputed),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func toDomainSessions(ms []sessionModel) []domain.Session {
	out := make([]domain.Session, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainSession(m))
	}
	return out
}
