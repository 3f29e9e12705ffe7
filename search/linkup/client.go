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


package linkup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
)

// Client implements search.Provider against the Linkup HTTP API.
type Client struct {
	config     *search.Config
	httpClient *http.Client
	logger     *slog.Logger
}

var _ search.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient creates a Linkup search client.
// The config is validated and normalized before use.
func NewClient(config *search.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// searchRequest is the wire shape of a Linkup search call.
type searchRequest struct {
	Query          string   `json:"q"`
	Depth          string   `json:"depth"`
	OutputType     string   `json:"outputType"`
	MaxResults     int      `json:"maxResults,omitempty"`
	ExcludeDomains []string `json:"excludeDomains,omitempty"`
}

// sourcedAnswer is the wire shape of a sourcedAnswer response.
type sourcedAnswer struct {
	Answer  string         `json:"answer"`
	Sources []answerSource `json:"sources"`
}

type answerSource struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Search executes one query. Transient failures (transport errors, 5xx)
// are retried with exponential backoff per the client config; credential,
// credit, and rate-limit failures are returned immediately.
func (c *Client) Search(ctx context.Context, query *search.Query) (*search.Result, error) {
	if query == nil {
		return nil, search.ErrQueryRequired
	}

	outputType := query.OutputType
	if outputType == "" {
		outputType = search.OutputSourcedAnswer
	}
	payload, err := json.Marshal(searchRequest{
		Query:          query.Text,
		Depth:          string(query.Depth),
		OutputType:     outputType,
		MaxResults:     query.MaxResults,
		ExcludeDomains: query.ExcludeDomains,
	})
	if err != nil {
		return nil, err
	}

	var result *search.Result
	err = retryWithBackoff(ctx, func() error {
		var attemptErr error
		result, attemptErr = c.doSearch(ctx, payload)
		return attemptErr
	}, c.config.MaxAttempts, c.config.RetryBaseDelay)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) doSearch(ctx context.Context, payload []byte) (*search.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/search", bytes.NewReader(payload))
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	var answer sourcedAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, permanent(fmt.Errorf("decoding linkup response: %w", err))
	}

	sources := make([]core.Source, 0, len(answer.Sources))
	for _, s := range answer.Sources {
		sources = append(sources, core.Source{Name: s.Name, URL: s.URL, Snippet: s.Snippet})
	}
	return &search.Result{Answer: answer.Answer, Sources: sources}, nil
}

// classifyStatus maps an HTTP status onto the search package sentinels.
// 5xx is left retryable; everything else non-2xx is permanent.
func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return permanent(search.ErrUnauthorized)
	case status == http.StatusPaymentRequired:
		return permanent(search.ErrInsufficientCredits)
	case status == http.StatusTooManyRequests:
		return permanent(search.ErrRateLimited)
	case status >= 500:
		return fmt.Errorf("%w: status %d", search.ErrUnavailable, status)
	default:
		return permanent(fmt.Errorf("linkup returned status %d", status))
	}
}

// Status probes the credits-balance endpoint as a cheap availability check.
func (c *Client) Status(ctx context.Context) *search.Availability {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/v1/credits/balance", nil)
	if err != nil {
		return &search.Availability{Reasons: []string{err.Error()}}
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("linkup status probe failed", "err", err)
		return &search.Availability{Reasons: []string{"linkup unreachable: " + err.Error()}}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("linkup status probe rejected", "status", resp.StatusCode)
		return &search.Availability{Reasons: []string{fmt.Sprintf("linkup status probe returned %d", resp.StatusCode)}}
	}
	return &search.Availability{Available: true}
}
