// Package timewindow holds the guard-window policy for session scheduling.
// All comparisons are on absolute instants; callers supply their own "now".
package timewindow

import "time"

const (
	// BookingLeadTime is the minimum notice for a new booking.
	BookingLeadTime = 4 * time.Hour
	// CancellationLeadTime is the minimum notice for a cancellation.
	CancellationLeadTime = 12 * time.Hour
)

// WithinFourHours reports whether t starts before now plus the booking lead
// time. Such slots are too soon to book.
func WithinFourHours(now, t time.Time) bool {
	return t.Before(now.Add(BookingLeadTime))
}

// WithinTwelveHours reports whether t starts before now plus the
// cancellation lead time. Sessions this close to their start can no longer
// be cancelled.
func WithinTwelveHours(now, t time.Time) bool {
	return t.Before(now.Add(CancellationLeadTime))
}
