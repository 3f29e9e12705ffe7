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


package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You are a prospect research assistant with broad knowledge of ` +
	`public figures, executives, and philanthropists. Answer the research request ` +
	`using the exact line-oriented schema it specifies. After the answer, append a ` +
	`block starting with the line SOURCES: followed by one line per supporting ` +
	`publication in the form "name | url | snippet". Only cite publications you ` +
	`are confident exist.`

// Provider implements search.Provider on top of an OpenAI-compatible chat
// model via langchaingo. It serves environments without Linkup access;
// its citations are model-asserted rather than crawled, so downstream
// confidence scoring naturally rates its prospects lower.
type Provider struct {
	client llms.Model
	model  string
	logger *slog.Logger
}

var _ search.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
	}
}

// NewProvider creates an LLM-backed search provider from the shared
// search config (LLMHost and LLMModel fields).
func NewProvider(config *search.Config, opts ...Option) (*Provider, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.LLMHost == "" || config.LLMModel == "" {
		return nil, ErrModelRequired
	}

	// "none" satisfies local OpenAI-compatible services without auth
	client, err := openai.New(
		openai.WithBaseURL(config.LLMHost),
		openai.WithToken("none"),
		openai.WithModel(config.LLMModel),
	)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		client: client,
		model:  config.LLMModel,
		logger: slog.Default().With("component", "llm-provider"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Search sends the query text to the chat model and parses the trailing
// SOURCES: block into citations.
func (p *Provider) Search(ctx context.Context, query *search.Query) (*search.Result, error) {
	if query == nil {
		return nil, search.ErrQueryRequired
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query.Text)},
		},
	}

	response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		p.logger.Error("llm search failed", "model", p.model, "err", err)
		return nil, err
	}
	if len(response.Choices) < 1 {
		p.logger.Debug("no choices returned from model")
		return &search.Result{}, nil
	}

	answer, sources := splitSources(response.Choices[0].Content)
	return &search.Result{Answer: answer, Sources: sources}, nil
}

// Status reports available; failures surface per-search.
func (p *Provider) Status(ctx context.Context) *search.Availability {
	return &search.Availability{Available: true}
}

// splitSources separates the answer body from the trailing SOURCES: block
// and parses its "name | url | snippet" lines. Lines that don't fit the
// shape are skipped.
func splitSources(text string) (string, []core.Source) {
	body, block, found := strings.Cut(text, "\nSOURCES:")
	if !found {
		return strings.TrimSpace(text), nil
	}

	var sources []core.Source
	for _, line := range strings.Split(block, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		src := core.Source{
			Name: strings.TrimSpace(parts[0]),
			URL:  strings.TrimSpace(parts[1]),
		}
		if len(parts) > 2 {
			src.Snippet = strings.TrimSpace(strings.Join(parts[2:], "|"))
		}
		if src.Name == "" || src.URL == "" {
			continue
		}
		sources = append(sources, src)
	}
	return strings.TrimSpace(body), sources
}
