package util

import "errors"

var (
	// ErrNotFound covers both "row does not exist" and "row belongs to a
	// different owner"; callers must not distinguish the two.
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("authentication required")
)
