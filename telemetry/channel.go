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

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 256

// Sink consumes search events drained from a ChannelTracker.
type Sink interface {
	Record(ev SearchEvent)
}

// ChannelTracker decouples event emission from consumption with a
// buffered channel drained by a single goroutine. TrackSearch never
// blocks: when the buffer is full the event is dropped and counted.
// A panicking sink is recovered and logged, never propagated.
type ChannelTracker struct {
	events    chan SearchEvent
	done      chan struct{}
	sink      Sink
	logger    *slog.Logger
	dropped   atomic.Uint64
	closeOnce sync.Once
}

var _ Tracker = (*ChannelTracker)(nil)

// Option configures a ChannelTracker.
type Option func(*ChannelTracker)

// WithBufferSize sets the event buffer capacity. Default is 256.
func WithBufferSize(size int) Option {
	return func(t *ChannelTracker) {
		if size < 1 {
			size = 1
		}
		t.events = make(chan SearchEvent, size)
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *ChannelTracker) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// NewChannelTracker creates a tracker draining into the given sink.
func NewChannelTracker(sink Sink, opts ...Option) (*ChannelTracker, error) {
	if sink == nil {
		return nil, ErrSinkRequired
	}

	t := &ChannelTracker{
		events: make(chan SearchEvent, defaultBufferSize),
		done:   make(chan struct{}),
		sink:   sink,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	go t.drain()
	return t, nil
}

// TrackSearch queues the event without blocking. Events are dropped
// when the buffer is full.
func (t *ChannelTracker) TrackSearch(ev SearchEvent) {
	select {
	case t.events <- ev:
	default:
		t.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded due to a full buffer.
func (t *ChannelTracker) Dropped() uint64 {
	return t.dropped.Load()
}

// Close stops accepting events, flushes whatever is buffered, and waits
// for the drain goroutine to finish. The tracker must not be used after
// Close.
func (t *ChannelTracker) Close() {
	t.closeOnce.Do(func() {
		close(t.events)
	})
	<-t.done
}

func (t *ChannelTracker) drain() {
	defer close(t.done)
	for ev := range t.events {
		t.record(ev)
	}
}

func (t *ChannelTracker) record(ev SearchEvent) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("telemetry sink panicked", "panic", r)
		}
	}()
	t.sink.Record(ev)
}
