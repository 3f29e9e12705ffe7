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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/prospector"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/discovery"
	"github.com/poiesic/prospector/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "prospector",
		Usage: "Donor prospect discovery from natural-language profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "discover",
				Usage:  "Run one prospect discovery against a profile prompt",
				Action: discoverCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "prompt",
						Aliases:  []string{"p"},
						Usage:    "Natural-language donor prospect profile",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum prospects to return (0 uses the mode default)",
					},
					&cli.BoolFlag{
						Name:  "deep",
						Usage: "Use deep research mode (slower, costlier, more thorough)",
					},
					&cli.StringFlag{
						Name:  "city",
						Usage: "Restrict to a city",
					},
					&cli.StringFlag{
						Name:  "state",
						Usage: "Restrict to a US state",
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "Restrict to a region",
					},
					&cli.StringSliceFlag{
						Name:  "focus",
						Usage: "Philanthropic focus areas (education, healthcare, arts, environment, social-services)",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Linkup API key",
						EnvVars: []string{"LINKUP_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "Linkup API base URL",
					},
					&cli.BoolFlag{
						Name:  "local-llm",
						Usage: "Use a local OpenAI-compatible model instead of the hosted API",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Local model host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Local model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the persistent response cache (in-memory if unset)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit the full result as JSON on stdout",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func discoverCommand(c *cli.Context) error {
	ctx := context.Background()

	searchOpts := []search.ConfigOption{
		search.WithAPIKey(c.String("api-key")),
		search.WithLLMHost(c.String("llm-host")),
		search.WithLLMModel(c.String("llm-model")),
	}
	if c.String("base-url") != "" {
		searchOpts = append(searchOpts, search.WithBaseURL(c.String("base-url")))
	}

	opts := []prospector.Option{
		prospector.WithSearchConfig(search.NewConfig(searchOpts...)),
		prospector.WithDiscoveryConfig(discovery.DefaultConfig()),
	}
	if c.Bool("local-llm") {
		opts = append(opts, prospector.WithLocalLLM())
	}
	if dir := c.String("cache-dir"); dir != "" {
		opts = append(opts, prospector.WithCacheDir(dir))
	}

	p, err := prospector.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize prospector: %w", err)
	}
	defer p.Close()

	raw := &core.RawRequest{
		Prompt:       c.String("prompt"),
		MaxResults:   c.Int("max-results"),
		DeepResearch: c.Bool("deep"),
		FocusAreas:   c.StringSlice("focus"),
	}
	if c.String("city") != "" || c.String("state") != "" || c.String("region") != "" {
		raw.Location = &core.RawLocation{
			City:   c.String("city"),
			State:  c.String("state"),
			Region: c.String("region"),
		}
	}

	result := p.Discover(ctx, raw)

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)

	usage := p.Usage()
	fmt.Fprintf(os.Stderr, "\nSearches: %d (%d failed), sources seen: %d, spend: %d¢\n",
		usage.Searches, usage.Failures, usage.Sources, usage.CostCents)

	if !result.Success {
		return fmt.Errorf("discovery failed [%s]: %s", result.ErrorCode, result.Error)
	}
	return nil
}

func printResult(result *core.DiscoveryResult) {
	fmt.Printf("Found %d prospect(s) in %dms across %d queries (estimated cost: %d¢)\n\n",
		len(result.Prospects), result.DurationMs, result.QueryCount, result.EstimatedCostCents)

	for i, p := range result.Prospects {
		fmt.Printf("%d. %s [%s]\n", i+1, p.Name, p.Confidence)
		if p.Title != "" {
			fmt.Printf("   Title:   %s\n", p.Title)
		}
		if p.Company != "" {
			fmt.Printf("   Company: %s\n", p.Company)
		}
		if loc := joinNonEmpty(p.City, p.State); loc != "" {
			fmt.Printf("   Location: %s\n", loc)
		}
		for _, reason := range p.MatchReasons {
			fmt.Printf("   - %s\n", reason)
		}
		for _, src := range p.Sources {
			fmt.Printf("   > %s (%s)\n", src.Name, src.URL)
		}
		fmt.Println()
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
