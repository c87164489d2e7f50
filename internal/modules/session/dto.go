package session

import (
	"time"

	"unitutor/internal/domain"
)

type CreateSessionRequest struct {
	TutorID   int64     `json:"tutor_id" binding:"required"`
	Course    string    `json:"course" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type CancelSessionRequest struct {
	Reason string `json:"reason"`
}

// SessionDetails is a session enriched with party display names.
type SessionDetails struct {
	domain.Session
	StudentName string `json:"student_name"`
	TutorName   string `json:"tutor_name"`
}

type MarkCompleteResponse struct {
	BothCompleted bool                 `json:"both_completed"`
	Status        domain.SessionStatus `json:"status"`
}
