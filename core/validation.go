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


package core

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Prompt and result bounds enforced by ValidateRequest.
const (
	MinPromptLength = 10
	MaxPromptLength = 2000

	// A prompt must contain at least this many words longer than
	// two characters to be considered meaningful.
	minMeaningfulWords = 3

	maxLocationFieldLength = 100

	StandardMinResults     = 5
	StandardMaxResults     = 25
	StandardDefaultResults = 15

	// Deep research trades volume for depth and cost, so its result
	// bounds are much tighter.
	DeepMinResults     = 1
	DeepMaxResults     = 5
	DeepDefaultResults = 5
)

var (
	scriptTagPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	strayScriptTag   = regexp.MustCompile(`(?i)</?script[^>]*>`)
	unsafeProtocol   = regexp.MustCompile(`(?i)(javascript|data)\s*:`)
	hasLetterOrDigit = regexp.MustCompile(`[\p{L}\p{N}]`)
)

// trivialPrompts rejects throwaway inputs that would only burn search spend.
var trivialPrompts = map[string]bool{
	"test":        true,
	"testing":     true,
	"hello":       true,
	"hello world": true,
	"hi":          true,
	"asdf":        true,
	"abc":         true,
	"xyz":         true,
	"foo bar":     true,
	"lorem ipsum": true,
}

// SanitizeText strips script tags and unsafe protocols from untrusted input
// and collapses runs of whitespace to single spaces.
func SanitizeText(s string) string {
	s = scriptTagPattern.ReplaceAllString(s, "")
	s = strayScriptTag.ReplaceAllString(s, "")
	s = unsafeProtocol.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// ValidateRequest sanitizes and bounds-checks a raw request.
//
// Validation is all-or-nothing: on success it returns a fully sanitized
// DiscoveryRequest and a nil error list; on failure it returns nil and a
// non-empty list of human-readable problems. Unknown focus areas are
// discarded silently rather than failing the request.
func ValidateRequest(raw *RawRequest) (*DiscoveryRequest, []string) {
	if raw == nil {
		return nil, []string{"request body is required"}
	}

	var problems []string

	prompt := SanitizeText(raw.Prompt)
	switch {
	case prompt == "":
		problems = append(problems, "prompt is required")
	case len(prompt) < MinPromptLength:
		problems = append(problems, fmt.Sprintf("prompt must be at least %d characters", MinPromptLength))
	case len(prompt) > MaxPromptLength:
		problems = append(problems, fmt.Sprintf("prompt must be at most %d characters", MaxPromptLength))
	case isTrivialPrompt(prompt):
		problems = append(problems, "prompt is too generic to search on; describe the ideal prospect")
	case meaningfulWordCount(prompt) < minMeaningfulWords:
		problems = append(problems, fmt.Sprintf("prompt needs at least %d meaningful words", minMeaningfulWords))
	}

	location, locProblems := validateLocation(raw.Location)
	problems = append(problems, locProblems...)

	if len(problems) > 0 {
		return nil, problems
	}

	req := &DiscoveryRequest{
		Prompt:       prompt,
		MaxResults:   ClampMaxResults(raw.MaxResults, raw.DeepResearch),
		TemplateID:   SanitizeText(raw.TemplateID),
		Location:     location,
		FocusAreas:   parseFocusAreas(raw.FocusAreas),
		DeepResearch: raw.DeepResearch,
	}
	return req, nil
}

// ClampMaxResults resolves a requested result count against the
// mode-dependent bounds. Zero selects the mode default; out-of-range
// values are clamped rather than rejected.
func ClampMaxResults(requested int, deep bool) int {
	min, max, def := StandardMinResults, StandardMaxResults, StandardDefaultResults
	if deep {
		min, max, def = DeepMinResults, DeepMaxResults, DeepDefaultResults
	}
	if requested == 0 {
		return def
	}
	if requested < min {
		return min
	}
	if requested > max {
		return max
	}
	return requested
}

func validateLocation(raw *RawLocation) (*Location, []string) {
	if raw == nil {
		return nil, nil
	}

	var problems []string
	check := func(field, value string) string {
		cleaned := SanitizeText(value)
		if len(cleaned) > maxLocationFieldLength {
			problems = append(problems, fmt.Sprintf("location %s must be at most %d characters", field, maxLocationFieldLength))
		}
		return cleaned
	}

	loc := &Location{
		City:   check("city", raw.City),
		State:  check("state", raw.State),
		Region: check("region", raw.Region),
	}
	if len(problems) > 0 {
		return nil, problems
	}
	if loc.Empty() {
		return nil, nil
	}
	return loc, nil
}

func parseFocusAreas(raw []string) []FocusArea {
	if len(raw) == 0 {
		return nil
	}
	areas := make([]FocusArea, 0, len(raw))
	seen := make(map[FocusArea]bool, len(raw))
	for _, s := range raw {
		fa, ok := ParseFocusArea(strings.ToLower(strings.TrimSpace(s)))
		if !ok || seen[fa] {
			continue
		}
		seen[fa] = true
		areas = append(areas, fa)
	}
	if len(areas) == 0 {
		return nil
	}
	return areas
}

func isTrivialPrompt(prompt string) bool {
	if !hasLetterOrDigit.MatchString(prompt) {
		return true // pure punctuation
	}
	return trivialPrompts[strings.ToLower(prompt)]
}

func meaningfulWordCount(prompt string) int {
	count := 0
	for _, word := range strings.Fields(prompt) {
		letters := 0
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				letters++
			}
		}
		if letters > 2 {
			count++
		}
	}
	return count
}
