package model

import "errors"

var (
	// ErrNotFound is returned by stores when a row is absent or not visible
	// to the requesting owner.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by UserStore.Create when the unique
	// email index rejects the insert.
	ErrDuplicateEmail = errors.New("email already registered")
)
