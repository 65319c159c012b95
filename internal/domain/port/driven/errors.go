package driven

import "errors"

var (
	// ErrAlreadyExists is returned when GitHub rejects a create with 422
	// because the label or milestone is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when the requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when GitHub answers 403 or 429 because a
	// primary or secondary rate limit was hit.
	ErrRateLimited = errors.New("rate limited")
)
