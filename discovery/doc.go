// Package discovery implements the donor-prospect discovery pipeline.
//
// A single Engine call takes a raw request through validation, query
// planning, concurrent provider execution, candidate extraction, detail
// mining, confidence scoring, and deduplicated aggregation, returning a
// DiscoveryResult that encodes both successes and domain failures.
package discovery
