package cache

import "errors"

var (
	// ErrPathRequired is returned when a persistent cache is opened
	// without a directory path.
	ErrPathRequired = errors.New("cache path is required")

	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("cache is closed")
)
