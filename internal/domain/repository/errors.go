package repository

import "errors"

// ErrNotFound is returned by every repository when no document matches the
// requested application id (or email, for user lookups).
var ErrNotFound = errors.New("not found")
