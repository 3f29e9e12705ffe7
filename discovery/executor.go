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
	"sync"
	"time"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
	"github.com/poiesic/prospector/telemetry"
)

// ResultCache is an optional read-through cache of provider responses,
// keyed by query. Implementations log their own internal failures; Get
// simply misses and Put errors are surfaced for the caller to log.
type ResultCache interface {
	Get(ctx context.Context, query *search.Query) (*search.Result, bool)
	Put(ctx context.Context, query *search.Query, result *search.Result) error
}

// batchResult aggregates the outcome of one concurrent query batch.
type batchResult struct {
	answers []string
	sources []core.Source

	successCount int
	errorCount   int

	// billableCount excludes cache hits: only real provider calls that
	// succeeded are ever billed.
	billableCount int

	errs []error
}

// executeQueries dispatches the planned queries concurrently through the
// shared worker pool and collects successes, failures, and sources.
// There is no ordering guarantee among queries and no retry at this
// layer. The batch succeeds if at least one query does; per-query
// telemetry emission is fire-and-forget.
func (e *Engine) executeQueries(ctx context.Context, requestID string, queries []*search.Query) *batchResult {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		batch batchResult
	)

	for _, query := range queries {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			started := time.Now()

			if e.cache != nil {
				if cached, hit := e.cache.Get(ctx, query); hit {
					mu.Lock()
					batch.answers = append(batch.answers, cached.Answer)
					batch.sources = append(batch.sources, cached.Sources...)
					batch.successCount++
					mu.Unlock()
					return
				}
			}

			result, err := e.provider.Search(ctx, query)
			if err != nil {
				e.tracker.TrackSearch(telemetry.SearchEvent{
					RequestID: requestID,
					StartTime: started,
					Mode:      string(query.Depth),
					Error:     err.Error(),
				})
				mu.Lock()
				batch.errorCount++
				batch.errs = append(batch.errs, err)
				mu.Unlock()
				return
			}

			e.tracker.TrackSearch(telemetry.SearchEvent{
				RequestID:   requestID,
				StartTime:   started,
				Mode:        string(query.Depth),
				SourceCount: len(result.Sources),
				CostCents:   e.queryCost(query.Depth),
			})

			if e.cache != nil {
				if err := e.cache.Put(ctx, query, result); err != nil {
					e.logger.Warn("failed to cache search result", "err", err)
				}
			}

			mu.Lock()
			batch.answers = append(batch.answers, result.Answer)
			batch.sources = append(batch.sources, result.Sources...)
			batch.successCount++
			batch.billableCount++
			mu.Unlock()
		}

		if err := e.pool.Submit(task); err != nil {
			// Pool rejected the task; run inline so the query still executes.
			task()
		}
	}

	wg.Wait()
	return &batch
}

// queryCost is the billed cost of one successful provider call.
func (e *Engine) queryCost(depth search.Depth) int {
	if depth == search.DepthDeep {
		return e.config.DeepCostPerSearchCents
	}
	return e.config.CostPerSearchCents
}
