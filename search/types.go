package search

import "github.com/poiesic/prospector/core"

// Depth selects how thoroughly the provider researches a query.
type Depth string

const (
	// DepthStandard is the fast, cheaper research mode.
	DepthStandard Depth = "standard"
	// DepthDeep trades latency and cost for more thorough research.
	DepthDeep Depth = "deep"
)

// OutputSourcedAnswer asks the provider for free text plus citations.
const OutputSourcedAnswer = "sourcedAnswer"

// Query is a single planned search. Queries are created fresh per
// discovery request and never persisted.
type Query struct {
	// Text is the full prompt sent to the provider, including any
	// output-shape instructions.
	Text string

	// Depth selects standard or deep research.
	Depth Depth

	// OutputType hints the desired response shape, e.g. OutputSourcedAnswer.
	OutputType string

	// MaxResults caps how many results the provider considers internally.
	MaxResults int

	// ExcludeDomains suppresses known low-quality sources.
	ExcludeDomains []string
}

// Result is a provider's answer to one query: free text plus the sources
// it drew on. Results are ephemeral and discarded after extraction.
type Result struct {
	Answer  string
	Sources []core.Source
}

// Availability reports whether a provider can currently serve searches.
type Availability struct {
	Available bool
	Reasons   []string
}
