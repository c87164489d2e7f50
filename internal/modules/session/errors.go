package session

import "errors"

var (
	ErrNotFound      = errors.New("session not found")
	ErrForbidden     = errors.New("not a party to this session")
	ErrValidation    = errors.New("validation error")
	ErrSelfBooking   = errors.New("cannot book a session with yourself")
	ErrTooSoon       = errors.New("slot starts within the booking lead time")
	ErrTooLate       = errors.New("too close to start time to cancel")
	ErrSlotTaken     = errors.New("tutor already has a session in this slot")
	ErrInvalidStatus = errors.New("invalid status for this action")
	ErrNotStarted    = errors.New("session has not started yet")
)
