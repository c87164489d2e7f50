package domain

import "time"

type SessionStatus string

const (
	SessionPending       SessionStatus = "PENDING"
	SessionConfirmed     SessionStatus = "CONFIRMED"
	SessionPendingRating SessionStatus = "PENDING_RATING"
	SessionDisputed      SessionStatus = "DISPUTED"
	SessionClosed        SessionStatus = "CLOSED"
	SessionCancelled     SessionStatus = "CANCELLED"
)

// Session is the central entity: a booked tutoring slot between one student
// and one tutor over a half-open [StartTime, EndTime) interval. Rows are
// never deleted; CLOSED and CANCELLED persist as history.
type Session struct {
	ID        int64         `json:"id"`
	StudentID int64         `json:"student_id"`
	TutorID   int64         `json:"tutor_id"`
	Course    string        `json:"course"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Status    SessionStatus `json:"status"`

	// Completion and rating flags are independently settable and never reset.
	StudentCompleted bool `json:"student_completed"`
	TutorCompleted   bool `json:"tutor_completed"`
	StudentRated     bool `json:"student_rated"`
	TutorRated       bool `json:"tutor_rated"`

	Cancelled         bool   `json:"cancelled"`
	CancelledBy       *int64 `json:"cancelled_by,omitempty"`
	CancelReason      string `json:"cancel_reason,omitempty"`
	CancellationRated bool   `json:"cancellation_rated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsParty reports whether userID is the student or the tutor of the session.
func (s *Session) IsParty(userID int64) bool {
	return s.StudentID == userID || s.TutorID == userID
}

// OtherParty returns the counterpart of userID in the session. Callers must
// check IsParty first.
func (s *Session) OtherParty(userID int64) int64 {
	if s.StudentID == userID {
		return s.TutorID
	}
	return s.StudentID
}
