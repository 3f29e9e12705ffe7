package mock

import (
	"context"
	"sync"

	"github.com/poiesic/prospector/search"
)

// MockProvider is a test double for search.Provider.
// It allows custom behavior injection via function fields and records
// every query it receives. Safe for concurrent use, since the discovery
// executor dispatches searches in parallel.
type MockProvider struct {
	// SearchFunc is called by Search if set.
	// If nil, Search returns an empty result.
	SearchFunc func(ctx context.Context, query *search.Query) (*search.Result, error)

	// StatusFunc is called by Status if set.
	// If nil, Status reports available.
	StatusFunc func(ctx context.Context) *search.Availability

	mu          sync.Mutex
	queries     []*search.Query
	statusCalls int
}

var _ search.Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with default behavior.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Search records the query and delegates to SearchFunc if set.
func (m *MockProvider) Search(ctx context.Context, query *search.Query) (*search.Result, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return &search.Result{}, nil
}

// Status delegates to StatusFunc if set, else reports available.
func (m *MockProvider) Status(ctx context.Context) *search.Availability {
	m.mu.Lock()
	m.statusCalls++
	m.mu.Unlock()

	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return &search.Availability{Available: true}
}

// Queries returns a copy of every query Search received, in arrival order.
func (m *MockProvider) Queries() []*search.Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*search.Query, len(m.queries))
	copy(out, m.queries)
	return out
}

// SearchCallCount returns the number of times Search was called.
func (m *MockProvider) SearchCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// StatusCallCount returns the number of times Status was called.
func (m *MockProvider) StatusCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusCalls
}

// Reset clears recorded calls and custom functions.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = nil
	m.statusCalls = 0
	m.SearchFunc = nil
	m.StatusFunc = nil
}
