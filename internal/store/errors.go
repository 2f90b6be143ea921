package store

import "errors"

// ErrSessionNotFound is returned when a visitor has no live edit session.
var ErrSessionNotFound = errors.New("edit session not found")
