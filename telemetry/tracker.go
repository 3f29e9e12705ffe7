// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package telemetry

import "time"

// SearchEvent describes one provider search for usage and cost accounting.
type SearchEvent struct {
	// RequestID correlates events from a single discovery call.
	RequestID string

	// StartTime is when the search was dispatched.
	StartTime time.Time

	// Mode is the search depth, "standard" or "deep".
	Mode string

	// SourceCount is how many sources the search returned.
	SourceCount int

	// CostCents is the billed cost of the search. Zero for failed
	// or cache-served queries.
	CostCents int

	// Error is the failure message, empty on success.
	Error string
}

// Tracker receives search events. Implementations must be best-effort
// and non-blocking: a tracker can never fail or stall the discovery path.
type Tracker interface {
	TrackSearch(ev SearchEvent)
}

// Noop is a Tracker that discards every event.
type Noop struct{}

var _ Tracker = Noop{}

func (Noop) TrackSearch(SearchEvent) {}
