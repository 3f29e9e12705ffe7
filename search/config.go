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


package search

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for search providers.
type Config struct {
	// BaseURL is the Linkup API endpoint.
	// Example: "https://api.linkup.so"
	BaseURL string

	// APIKey authenticates against the Linkup API.
	APIKey string

	// Timeout bounds each individual provider call.
	// Default: 30s
	Timeout time.Duration

	// MaxAttempts is how many times a transient provider failure is
	// retried before giving up. Retry lives here, in the search client;
	// the discovery executor never retries.
	// Default: 3
	MaxAttempts int

	// RetryBaseDelay is the base delay for exponential backoff between
	// retry attempts. Default: 500ms
	RetryBaseDelay time.Duration

	// LLMHost is the base URL of an OpenAI-compatible chat service used
	// by the LLM fallback provider.
	// Example: "http://localhost:11434/v1"
	LLMHost string

	// LLMModel is the model identifier for the LLM fallback provider.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	LLMModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the Linkup API endpoint.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithAPIKey sets the Linkup API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithMaxAttempts sets the retry attempt cap for transient failures.
func WithMaxAttempts(attempts int) ConfigOption {
	return func(c *Config) {
		c.MaxAttempts = attempts
	}
}

// WithRetryBaseDelay sets the base delay for retry backoff.
func WithRetryBaseDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryBaseDelay = delay
	}
}

// WithLLMHost sets the OpenAI-compatible host for the LLM provider.
func WithLLMHost(host string) ConfigOption {
	return func(c *Config) {
		c.LLMHost = host
	}
}

// WithLLMModel sets the model for the LLM provider.
func WithLLMModel(model string) ConfigOption {
	return func(c *Config) {
		c.LLMModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://api.linkup.so",
		Timeout:        30 * time.Second,
		MaxAttempts:    3,
		RetryBaseDelay: 500 * time.Millisecond,
		LLMHost:        "http://localhost:11434/v1",
		LLMModel:       "qwen2.5:3b",
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

// Normalize ensures the configuration is in a canonical form.
// BaseURL loses any trailing slash; LLMHost gains the /v1 suffix most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM) require.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.LLMHost != "" && !strings.HasSuffix(c.LLMHost, "/v1") {
		c.LLMHost = strings.TrimSuffix(c.LLMHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.BaseURL == "" {
		return errors.New("search config: BaseURL is required")
	}
	if c.Timeout <= 0 {
		return errors.New("search config: Timeout must be positive")
	}
	if c.MaxAttempts < 1 {
		return errors.New("search config: MaxAttempts must be at least 1")
	}
	if c.RetryBaseDelay <= 0 {
		return errors.New("search config: RetryBaseDelay must be positive")
	}
	return nil
}
