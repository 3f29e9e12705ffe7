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
	"errors"
	"time"
)

// Config holds tuning knobs for the discovery engine.
type Config struct {
	// CostPerSearchCents is billed per successful standard-depth query.
	// Failed or skipped queries are never billed.
	// Default: 1
	CostPerSearchCents int

	// DeepCostPerSearchCents is billed per successful deep-research query.
	// Default: 5
	DeepCostPerSearchCents int

	// Timeout bounds one whole discovery call wall-clock.
	// Default: 60s
	Timeout time.Duration

	// PoolSize is the worker pool capacity for concurrent query dispatch,
	// shared across discovery calls.
	// Default: 9 (three concurrent calls' worth of queries)
	PoolSize int

	// ExcludeDomains suppresses known low-quality sources on every query.
	ExcludeDomains []string
}

// defaultExcludedDomains lists sources that consistently pollute
// prospect extraction with user-generated or scraped content.
var defaultExcludedDomains = []string{
	"pinterest.com",
	"quora.com",
	"answers.com",
	"scribd.com",
	"coursehero.com",
	"slideshare.net",
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithCostPerSearch sets the per-query cost in cents for standard depth.
func WithCostPerSearch(cents int) ConfigOption {
	return func(c *Config) {
		c.CostPerSearchCents = cents
	}
}

// WithDeepCostPerSearch sets the per-query cost in cents for deep research.
func WithDeepCostPerSearch(cents int) ConfigOption {
	return func(c *Config) {
		c.DeepCostPerSearchCents = cents
	}
}

// WithTimeout sets the overall discovery timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithPoolSize sets the dispatch worker pool capacity.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithExcludeDomains replaces the default excluded-domain list.
func WithExcludeDomains(domains []string) ConfigOption {
	return func(c *Config) {
		c.ExcludeDomains = domains
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CostPerSearchCents:     1,
		DeepCostPerSearchCents: 5,
		Timeout:                60 * time.Second,
		PoolSize:               9,
		ExcludeDomains:         defaultExcludedDomains,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.CostPerSearchCents < 0 || c.DeepCostPerSearchCents < 0 {
		return errors.New("discovery config: search costs must not be negative")
	}
	if c.Timeout <= 0 {
		return errors.New("discovery config: Timeout must be positive")
	}
	if c.PoolSize < 1 {
		return errors.New("discovery config: PoolSize must be at least 1")
	}
	return nil
}
