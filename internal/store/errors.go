package store

import "errors"

// ErrNotFound indicates a lookup by identifier matched nothing.
var ErrNotFound = errors.New("not found")
