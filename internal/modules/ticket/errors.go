package ticket

import "errors"

var (
	ErrNotFound   = errors.New("ticket not found")
	ErrValidation = errors.New("validation error")
)
