package wheel

import "errors"

var (
	// ErrInvalidConfig reports a non-positive sector count or a malformed
	// angle range.
	ErrInvalidConfig = errors.New("invalid picker config")

	// ErrInvalidState reports a gesture event delivered out of sequence.
	ErrInvalidState = errors.New("invalid gesture state")
)
