package discovery

import "errors"

var (
	// ErrProviderRequired is returned when a search provider is not provided.
	ErrProviderRequired = errors.New("search provider required")

	// ErrConfigRequired is returned when a nil config option is applied.
	ErrConfigRequired = errors.New("engine config required")
)
