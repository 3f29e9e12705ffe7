package search

import "errors"

var (
	// ErrUnauthorized is returned when the provider rejects the API key.
	ErrUnauthorized = errors.New("search provider rejected credentials")

	// ErrRateLimited is returned when the provider throttles the caller.
	ErrRateLimited = errors.New("search provider rate limit exceeded")

	// ErrInsufficientCredits is returned when the provider account has no
	// search budget left.
	ErrInsufficientCredits = errors.New("search provider credits exhausted")

	// ErrUnavailable is returned when the provider cannot be reached or
	// reports itself down.
	ErrUnavailable = errors.New("search provider unavailable")

	// ErrQueryRequired is returned when Search is called without a query.
	ErrQueryRequired = errors.New("query required")
)
