package repository

import "errors"

// ErrNotFound is returned when a user-scoped row does not exist
var ErrNotFound = errors.New("record not found")
