package domain

import "time"

type RatingVisibility string

const (
	// RatingPublic: student-given and cancellation ratings. Shown on tutor
	// profiles.
	RatingPublic RatingVisibility = "public"
	// RatingPrivate: tutor-given ratings about students. Never exposed
	// through any public endpoint.
	RatingPrivate RatingVisibility = "private"
)

// Rating is immutable once created; at most one per (session, rater).
type Rating struct {
	ID         int64            `json:"id"`
	SessionID  int64            `json:"session_id"`
	RaterID    int64            `json:"rater_id"`
	TargetID   int64            `json:"target_id"`
	Score      int              `json:"score" validate:"gte=1,lte=5"`
	Comment    string           `json:"comment,omitempty"`
	Visibility RatingVisibility `json:"visibility"`
	CreatedAt  time.Time        `json:"created_at"`
}
