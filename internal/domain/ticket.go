package domain

import "time"

type TicketCategory string

const (
	TicketAccount      TicketCategory = "account"
	TicketMatching     TicketCategory = "matching"
	TicketCancellation TicketCategory = "cancellation"
	TicketRatings      TicketCategory = "ratings"
	TicketRules        TicketCategory = "rules"
	TicketTechnical    TicketCategory = "technical"
)

type TicketStatus string

const (
	TicketPending    TicketStatus = "pending"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

type Ticket struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	Category      TicketCategory `json:"category"`
	Subject       string         `json:"subject"`
	Message       string         `json:"message"`
	Status        TicketStatus   `json:"status"`
	AdminResponse string         `json:"admin_response,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
