package domain

import "time"

type ProfileRole string

const (
	ProfileStudent ProfileRole = "student"
	ProfileTutor   ProfileRole = "tutor"
)

// CreditPointsPerSession is added to each party's profile when a session
// fully closes (both sides rated).
const CreditPointsPerSession = 10

// AvailabilitySlot is one cell of the weekly availability grid. It is a
// tagged structure validated at the API boundary, never a free-form payload.
type AvailabilitySlot struct {
	WeekIndex  int    `json:"week_index" validate:"gte=0"`
	DayOfWeek  int    `json:"day_of_week" validate:"gte=0,lte=6"`
	HourBlock  string `json:"hour_block" validate:"required"`
	IsBookable bool   `json:"is_bookable"`
}

// Profile is per user per marketplace role. A user acting as both student
// and tutor has two rows.
type Profile struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id"`
	UserRole     ProfileRole        `json:"user_role"`
	Age          int                `json:"age,omitempty"`
	Year         string             `json:"year,omitempty"`
	Major        string             `json:"major,omitempty"`
	Bio          string             `json:"bio,omitempty"`
	PriceMin     int                `json:"price_min,omitempty"`
	PriceMax     int                `json:"price_max,omitempty"`
	Courses      []string           `json:"courses,omitempty"`
	Availability []AvailabilitySlot `json:"availability,omitempty"`
	CreditPoints int                `json:"credit_points"`
	ContactInfo  string             `json:"contact_info,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
