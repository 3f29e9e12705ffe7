package linkup

import "errors"

var (
	// ErrConfigRequired is returned when a config is not provided.
	ErrConfigRequired = errors.New("search config required")

	// ErrAPIKeyRequired is returned when the config has no API key.
	ErrAPIKeyRequired = errors.New("linkup API key required")

	// ErrInvalidMaxAttempts is returned for a non-positive retry budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
