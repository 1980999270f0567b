package usecase

import "errors"

// Shared across usecases; anything not explicitly classified collapses
// into ErrInternal so store details never leak to clients.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)
