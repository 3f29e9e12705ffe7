package telemetry

import (
	"log/slog"
	"sync"
	"time"
)

// SlogSink records events to a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

var _ Sink = (*SlogSink)(nil)

// NewSlogSink creates a sink logging to the given logger, or
// slog.Default() when nil.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Record(ev SearchEvent) {
	s.logger.Info("search tracked",
		"requestID", ev.RequestID,
		"mode", ev.Mode,
		"sources", ev.SourceCount,
		"elapsed", time.Since(ev.StartTime),
		"error", ev.Error,
	)
}

// Usage is a snapshot of accumulated search activity.
type Usage struct {
	Searches  int
	Failures  int
	Sources   int
	CostCents int
}

// UsageAccumulator tallies search events for end-of-run reporting.
type UsageAccumulator struct {
	mu    sync.Mutex
	usage Usage
}

var _ Sink = (*UsageAccumulator)(nil)

// NewUsageAccumulator creates an empty accumulator.
func NewUsageAccumulator() *UsageAccumulator {
	return &UsageAccumulator{}
}

func (u *UsageAccumulator) Record(ev SearchEvent) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.usage.Searches++
	u.usage.Sources += ev.SourceCount
	u.usage.CostCents += ev.CostCents
	if ev.Error != "" {
		u.usage.Failures++
	}
}

// Snapshot returns the totals recorded so far.
func (u *UsageAccumulator) Snapshot() Usage {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.usage
}

// MultiSink fans one event out to several sinks.
type MultiSink []Sink

var _ Sink = MultiSink(nil)

func (m MultiSink) Record(ev SearchEvent) {
	for _, s := range m {
		s.Record(ev)
	}
}
