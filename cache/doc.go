// Package cache provides a TTL-bounded BadgerDB cache of search
// provider responses.
//
// Entries are keyed by a content hash of the query (text, depth, and
// result cap) and expire on their own; the cache never serves a stale
// response past its TTL and never fails a discovery call. A corrupt or
// missing entry is simply a miss.
package cache
