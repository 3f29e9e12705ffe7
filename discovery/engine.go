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


package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
	"github.com/poiesic/prospector/telemetry"
)

// Engine orchestrates the discovery pipeline: request validation, query
// planning, concurrent search execution, entity extraction, detail
// mining, confidence scoring, and result aggregation.
//
// All per-request state (the seen-name set, candidate list, batch
// accumulator) is function-local, so one Engine safely serves
// concurrent discovery calls.
type Engine struct {
	provider search.Provider
	tracker  telemetry.Tracker
	cache    ResultCache
	pool     *ants.Pool
	config   *Config
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithTracker sets the telemetry tracker. Default is telemetry.Noop.
func WithTracker(tracker telemetry.Tracker) Option {
	return func(e *Engine) error {
		if tracker == nil {
			tracker = telemetry.Noop{}
		}
		e.tracker = tracker
		return nil
	}
}

// WithCache sets an optional provider-response cache.
func WithCache(cache ResultCache) Option {
	return func(e *Engine) error {
		e.cache = cache
		return nil
	}
}

// WithConfig replaces the default engine config.
func WithConfig(config *Config) Option {
	return func(e *Engine) error {
		if config == nil {
			return ErrConfigRequired
		}
		if err := config.Validate(); err != nil {
			return err
		}
		e.config = config
		return nil
	}
}

// NewEngine creates a discovery engine around a search provider.
func NewEngine(provider search.Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	e := &Engine{
		provider: provider,
		tracker:  telemetry.Noop{},
		config:   DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(e.config.PoolSize)
	if err != nil {
		return nil, err
	}
	e.pool = pool
	return e, nil
}

// Release releases the dispatch worker pool. The engine must not be
// used after Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Discover runs one full discovery call. Domain failures are encoded in
// the returned result (Success, Error, ErrorCode) rather than as Go
// errors, so the result is always non-nil and always well-formed.
func (e *Engine) Discover(ctx context.Context, raw *core.RawRequest) *core.DiscoveryResult {
	started := time.Now()
	requestID := uuid.NewString()
	logger := e.logger.With("requestID", requestID)

	req, problems := core.ValidateRequest(raw)
	if len(problems) > 0 {
		logger.Info("discovery request rejected", "problems", len(problems), "elapsed", time.Since(started))
		return &core.DiscoveryResult{
			Prospects:  []core.DiscoveredProspect{},
			DurationMs: time.Since(started).Milliseconds(),
			Error:      strings.Join(problems, "; "),
			ErrorCode:  core.CodeInvalidRequest,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	// Pre-flight: don't burn queries against a provider that is down.
	if avail := e.provider.Status(ctx); !avail.Available {
		logger.Warn("search provider unavailable", "reasons", avail.Reasons, "elapsed", time.Since(started))
		return &core.DiscoveryResult{
			Prospects:     []core.DiscoveredProspect{},
			QueryExecuted: req.Prompt,
			DurationMs:    time.Since(started).Milliseconds(),
			Error:         "search provider unavailable: " + strings.Join(avail.Reasons, "; "),
			ErrorCode:     core.CodeLinkupUnavailable,
		}
	}

	queries := planQueries(req, e.config.ExcludeDomains)
	batch := e.executeQueries(ctx, requestID, queries)

	if batch.successCount == 0 {
		code := e.classifyTotalFailure(ctx, batch.errs)
		logger.Error("all search queries failed",
			"queries", len(queries),
			"code", code,
			"elapsed", time.Since(started))
		return &core.DiscoveryResult{
			Prospects:     []core.DiscoveredProspect{},
			QueryExecuted: req.Prompt,
			QueryCount:    len(queries),
			DurationMs:    time.Since(started).Milliseconds(),
			Error:         "all search queries failed",
			ErrorCode:     code,
		}
	}

	combined := strings.Join(batch.answers, "\n\n")
	candidates := extractCandidates(combined, req.MaxResults)

	now := time.Now()
	prospects := make([]core.DiscoveredProspect, 0, len(candidates))
	for _, cand := range candidates {
		if p, ok := buildProspect(cand, combined, batch.sources, now, logger); ok {
			prospects = append(prospects, p)
		}
	}
	totalFound := len(prospects)
	if len(prospects) > req.MaxResults {
		// The extractor already early-exits at the cap; enforce it again
		// in case a candidate count ever slips through.
		prospects = prospects[:req.MaxResults]
	}

	result := &core.DiscoveryResult{
		Success:            true,
		Prospects:          prospects,
		TotalFound:         totalFound,
		QueryExecuted:      req.Prompt,
		QueryCount:         len(queries),
		DurationMs:         time.Since(started).Milliseconds(),
		EstimatedCostCents: e.estimateCost(batch.billableCount, req.DeepResearch),
		Warnings:           buildWarnings(batch, len(queries), len(prospects), req.MaxResults),
	}

	logger.Info("discovery completed",
		"prospects", len(prospects),
		"queriesSucceeded", batch.successCount,
		"queriesFailed", batch.errorCount,
		"costCents", result.EstimatedCostCents,
		"elapsed", time.Since(started))
	return result
}

// estimateCost bills successful provider calls only; failed, skipped,
// and cache-served queries cost nothing.
func (e *Engine) estimateCost(billable int, deep bool) int {
	depth := search.DepthStandard
	if deep {
		depth = search.DepthDeep
	}
	return billable * e.queryCost(depth)
}

// classifyTotalFailure maps a fully-failed batch onto an error code.
// Timeout wins; a batch that failed uniformly for one provider-side
// reason surfaces that reason; anything mixed is a server error.
func (e *Engine) classifyTotalFailure(ctx context.Context, errs []error) core.ErrorCode {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return core.CodeTimeout
	}
	uniform := func(target error) bool {
		if len(errs) == 0 {
			return false
		}
		for _, err := range errs {
			if !errors.Is(err, target) {
				return false
			}
		}
		return true
	}
	switch {
	case uniform(search.ErrUnauthorized):
		return core.CodeUnauthorized
	case uniform(search.ErrRateLimited):
		return core.CodeRateLimited
	case uniform(search.ErrInsufficientCredits):
		return core.CodeInsufficientCredits
	default:
		return core.CodeServerError
	}
}

// buildWarnings assembles the non-fatal notices attached to a
// successful result: partial query failures, the zero-match case, and
// under-fulfillment relative to the requested count.
func buildWarnings(batch *batchResult, queryCount, found, requested int) []string {
	var warnings []string
	if batch.errorCount > 0 {
		warnings = append(warnings, fmt.Sprintf("%d of %d search queries had errors", batch.errorCount, queryCount))
	}
	if found == 0 {
		warnings = append(warnings, "no prospects matched the search criteria; try broadening the prompt or removing location filters")
	} else if found < requested {
		warnings = append(warnings, fmt.Sprintf("found %d of %d requested prospects", found, requested))
	}
	return warnings
}
