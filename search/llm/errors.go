package llm

import "errors"

var (
	// ErrConfigRequired is returned when a config is not provided.
	ErrConfigRequired = errors.New("search config required")

	// ErrModelRequired is returned when the config names no LLM host or model.
	ErrModelRequired = errors.New("LLM host and model required")
)
