package domain

import "errors"

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUserAlreadyExists is returned when registering a username that is
// already taken.
var ErrUserAlreadyExists = errors.New("user with this username already exists")
