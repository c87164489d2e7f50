package rating

import "errors"

var (
	ErrNotFound      = errors.New("session not found")
	ErrForbidden     = errors.New("not allowed to rate this session")
	ErrValidation    = errors.New("validation error")
	ErrSelfRating    = errors.New("cannot rate yourself")
	ErrNotRatable    = errors.New("session not ready for rating")
	ErrAlreadyRated  = errors.New("already rated this session")
	ErrNotCancelled  = errors.New("session is not cancelled")
	ErrNothingToRate = errors.New("no cancellation to rate")
)
