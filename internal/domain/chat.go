package domain

import "time"

// ChatMessage belongs to a session's private chat. Sanitized is true when
// the stored text had contact info redacted at send time.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	SenderID  int64     `json:"sender_id"`
	Message   string    `json:"message"`
	Sanitized bool      `json:"sanitized"`
	CreatedAt time.Time `json:"created_at"`

	SenderName string `json:"sender_name,omitempty" gorm:"-"`
}
