package database

import "errors"

// Store errors
var (
	// ErrItemNotFound is returned by Update when no item has the given id
	ErrItemNotFound = errors.New("todo item not found")

	// ErrCorruptRow indicates a stored row that cannot be decoded
	ErrCorruptRow = errors.New("corrupt todo row")

	// ErrStoreClosed is returned by operations on a closed store
	ErrStoreClosed = errors.New("store is closed")
)
