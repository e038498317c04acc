package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrNoSession  = errors.New("no active guided session")
	ErrValidation = errors.New("validation failed")
	ErrNetwork    = errors.New("network request failed")
)
