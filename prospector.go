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


package prospector

import (
	"context"
	"log/slog"

	"github.com/poiesic/prospector/cache"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/discovery"
	"github.com/poiesic/prospector/search"
	"github.com/poiesic/prospector/search/linkup"
	"github.com/poiesic/prospector/search/llm"
	"github.com/poiesic/prospector/telemetry"
)

var _ discovery.ResultCache = (*cache.ResponseCache)(nil)

// Prospector wires a search provider, response cache, telemetry, and
// the discovery engine into one ready-to-use service.
type Prospector struct {
	engine  *discovery.Engine
	cache   *cache.ResponseCache
	tracker *telemetry.ChannelTracker
	usage   *telemetry.UsageAccumulator
	logger  *slog.Logger
}

// Option configures a Prospector.
type Option func(*options)

type options struct {
	searchConfig    *search.Config
	discoveryConfig *discovery.Config
	cacheDir        string
	useLLM          bool
	logger          *slog.Logger
}

// WithSearchConfig replaces the default provider configuration.
func WithSearchConfig(config *search.Config) Option {
	return func(o *options) {
		if config != nil {
			o.searchConfig = config
		}
	}
}

// WithDiscoveryConfig replaces the default engine configuration.
func WithDiscoveryConfig(config *discovery.Config) Option {
	return func(o *options) {
		if config != nil {
			o.discoveryConfig = config
		}
	}
}

// WithCacheDir enables a persistent response cache at the given
// directory. Without it the cache is held in memory.
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithLocalLLM swaps the hosted search API for a local OpenAI-compatible
// model. Useful offline and in development; results carry no real
// source URLs.
func WithLocalLLM() Option {
	return func(o *options) {
		o.useLLM = true
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New assembles a Prospector. The caller owns the returned instance and
// must Close it.
func New(opts ...Option) (*Prospector, error) {
	o := &options{
		searchConfig:    search.DefaultConfig(),
		discoveryConfig: discovery.DefaultConfig(),
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.searchConfig.Normalize()

	var (
		provider search.Provider
		err      error
	)
	if o.useLLM {
		provider, err = llm.NewProvider(o.searchConfig, llm.WithLogger(o.logger))
	} else {
		provider, err = linkup.NewClient(o.searchConfig, linkup.WithLogger(o.logger))
	}
	if err != nil {
		return nil, err
	}

	var responseCache *cache.ResponseCache
	if o.cacheDir != "" {
		responseCache, err = cache.Open(o.cacheDir, cache.WithLogger(o.logger))
	} else {
		responseCache, err = cache.OpenMemory(cache.WithLogger(o.logger))
	}
	if err != nil {
		return nil, err
	}

	usage := telemetry.NewUsageAccumulator()
	sink := telemetry.MultiSink{usage, telemetry.NewSlogSink(o.logger)}
	tracker, err := telemetry.NewChannelTracker(sink, telemetry.WithLogger(o.logger))
	if err != nil {
		responseCache.Close()
		return nil, err
	}

	engine, err := discovery.NewEngine(provider,
		discovery.WithConfig(o.discoveryConfig),
		discovery.WithCache(responseCache),
		discovery.WithTracker(tracker),
		discovery.WithLogger(o.logger),
	)
	if err != nil {
		tracker.Close()
		responseCache.Close()
		return nil, err
	}

	return &Prospector{
		engine:  engine,
		cache:   responseCache,
		tracker: tracker,
		usage:   usage,
		logger:  o.logger,
	}, nil
}

// Discover runs one discovery call end to end.
func (p *Prospector) Discover(ctx context.Context, raw *core.RawRequest) *core.DiscoveryResult {
	return p.engine.Discover(ctx, raw)
}

// Usage returns accumulated search telemetry since startup.
func (p *Prospector) Usage() telemetry.Usage {
	return p.usage.Snapshot()
}

// Close releases the engine pool, drains telemetry, and closes the cache.
func (p *Prospector) Close() error {
	p.engine.Release()
	p.tracker.Close()
	if err := p.cache.Close(); err != nil {
		p.logger.Error("error closing response cache", "err", err)
		return err
	}
	return nil
}
