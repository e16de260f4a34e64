// Package common contains shared constants and sentinel errors used across
// jobtrackr client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors raised before a request is dispatched.
	ErrValidation = errors.New("validation error")
)
