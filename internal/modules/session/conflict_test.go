package session

import (
	"testing"
	"time"

	"unitutor/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ts(h int) time.Time {
	return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   bool
	}{
		{"identical", 10, 11, 10, 11, true},
		{"contained", 10, 12, 10, 11, true},
		{"partial overlap", 10, 12, 11, 13, true},
		{"back to back before", 9, 10, 10, 11, false},
		{"back to back after", 11, 12, 10, 11, false},
		{"disjoint", 8, 9, 10, 11, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(ts(tc.aStart), ts(tc.aEnd), ts(tc.bStart), ts(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasConflictSkipsInactiveSessions(t *testing.T) {
	existing := []domain.Session{
		{StartTime: ts(10), EndTime: ts(11), Status: domain.SessionCancelled},
		{StartTime: ts(10), EndTime: ts(11), Status: domain.SessionClosed},
	}
	assert.False(t, HasConflict(ts(10), ts(11), existing))

	existing = append(existing, domain.Session{
		StartTime: ts(10), EndTime: ts(11), Status: domain.SessionConfirmed,
	})
	assert.True(t, HasConflict(ts(10), ts(11), existing))
}

func TestHasConflictAgainstPending(t *testing.T) {
	existing := []domain.Session{
		{StartTime: ts(14), EndTime: ts(15), Status: domain.SessionPending},
	}
	assert.True(t, HasConflict(ts(14), ts(16), existing))
	assert.False(t, HasConflict(ts(15), ts(16), existing))
}
