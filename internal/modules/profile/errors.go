package profile

import "errors"

var (
	ErrNotFound   = errors.New("profile not found")
	ErrValidation = errors.New("validation error")
	ErrBioNeeded  = errors.New("tutor profile requires a bio")
)
