// Package mock provides a test double for the search.Provider interface.
// Tests inject behavior through function fields and assert on recorded
// queries and call counts.
package mock
