package chat

import "errors"

var (
	ErrNotFound   = errors.New("session not found")
	ErrForbidden  = errors.New("not a participant of this session chat")
	ErrValidation = errors.New("message cannot be empty")
)
