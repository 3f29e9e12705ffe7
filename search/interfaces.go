package search

import "context"

// Provider is an opaque web-search capability that answers a query with
// free text plus source citations. Implementations must be safe for
// concurrent use; the discovery executor dispatches queries in parallel.
type Provider interface {
	// Search executes a single query and returns its sourced answer.
	// Errors should be classified with the sentinel errors in this
	// package where possible so callers can map them to result codes.
	Search(ctx context.Context, query *Query) (*Result, error)

	// Status is a cheap availability probe, called once before a batch
	// of searches is dispatched. It never returns an error; problems
	// are reported through Availability.Reasons.
	Status(ctx context.Context) *Availability
}
