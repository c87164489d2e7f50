package admin

import "unitutor/internal/domain"

type UpdateTicketRequest struct {
	Status        string `json:"status" binding:"required,oneof=pending in_progress resolved"`
	AdminResponse string `json:"admin_response"`
}

// TicketView enriches a ticket with its author for the admin list.
type TicketView struct {
	domain.Ticket
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

type Analytics struct {
	CompletedSessions int64 `json:"completed_sessions"`
	Disputes          int64 `json:"disputes"`
	PendingRatings    int64 `json:"pending_ratings"`
	TotalUsers        int64 `json:"total_users"`
	StudentCount      int64 `json:"student_count"`
	TutorCount        int64 `json:"tutor_count"`
}

type UserDetail struct {
	User           *domain.User    `json:"user"`
	StudentProfile *domain.Profile `json:"student_profile,omitempty"`
	TutorProfile   *domain.Profile `json:"tutor_profile,omitempty"`
	AverageRating  float64         `json:"average_rating"`
	ClosedSessions int64           `json:"closed_sessions"`
}
