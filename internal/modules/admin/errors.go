package admin

import "errors"

var ErrNotFound = errors.New("record not found")
