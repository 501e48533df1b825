package models

import "errors"

// Domain-specific errors for todo items
var (
	// ErrUnknownIconTag indicates a persisted icon tag outside the fixed lookup table.
	// Treated as data corruption: callers must not retry.
	ErrUnknownIconTag = errors.New("unknown icon tag")

	// ErrUnknownIcon indicates an icon name that is not one of the five known icons
	ErrUnknownIcon = errors.New("unknown icon")

	// ErrEmptyTask indicates an attempt to create an item with a blank task
	ErrEmptyTask = errors.New("task cannot be empty")
)
