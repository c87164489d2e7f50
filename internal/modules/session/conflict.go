package session

import (
	"time"

	"unitutor/internal/domain"
)

// Overlaps is the canonical half-open interval test: [aStart, aEnd) and
// [bStart, bEnd) intersect iff each starts before the other ends.
// Back-to-back slots (end == start) do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict scans the tutor's slot-holding sessions for an overlap with
// the candidate interval. Only PENDING and CONFIRMED sessions hold a slot.
func HasConflict(start, end time.Time, existing []domain.Session) bool {
	for _, s := range existing {
		if s.Status != domain.SessionPending && s.Status != domain.SessionConfirmed {
			continue
		}
		if Overlaps(start, end, s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}
