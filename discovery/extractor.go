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
	"regexp"
	"strings"

	"github.com/poiesic/prospector/core"
)

// fullName matches a capitalized multi-part person name on one line.
const fullName = `[A-Z][a-zA-Z'’-]+(?: [A-Z][a-zA-Z'’-]+)+`

// roleWords matches common executive, board, and philanthropic titles.
const roleWords = `(?:Chief Executive Officer|Executive Director|Managing Director|Vice President|Board Member|Co-Founder|Chairwoman|Chairman|President|Director|Founder|Trustee|Partner|Principal|Philanthropist|CEO|CFO|COO|Owner)`

// extractionTier is one pass of the cascading pattern strategy. Tiers
// run in declaration order, each engaged only while the accepted count
// is still short of the request cap.
type extractionTier struct {
	name     string
	patterns []*regexp.Regexp
}

// extractionTiers is ordered by decreasing precision: explicit NAME tags
// first, name-adjacent role phrasing second, markdown emphasis and
// quoting as a last resort.
var extractionTiers = []extractionTier{
	{
		name: "tagged",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)(?:\*\*)?NAME(?:\*\*)?:[ \t]*(?P<name>` + fullName + `)`),
		},
	},
	{
		name: "role",
		patterns: []*regexp.Regexp{
			// "Jane Doe, CEO of Acme" / "Jane Doe, the Trustee at Acme"
			regexp.MustCompile(`(?P<name>` + fullName + `), (?:the )?` + roleWords + ` (?:of|at)\b`),
			// "Jane Doe is the president" / "Jane Doe serves as trustee"
			regexp.MustCompile(`(?P<name>` + fullName + `) (?i:(?:is|was|serves as|served as) (?:the |a |an )?` + roleWords + `)`),
			// "CEO Jane Doe"
			regexp.MustCompile(roleWords + ` (?P<name>` + fullName + `)`),
		},
	},
	{
		name: "emphasis",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\*\*(?P<name>` + fullName + `)\*\*`),
			regexp.MustCompile(`["“](?P<name>` + fullName + `)["”]`),
		},
	},
}

// candidate is a matched name plus its originating position in the
// combined answer text. It exists only during extraction.
type candidate struct {
	name   string
	offset int
}

// extractCandidates runs the tier cascade over the combined answer text
// and returns up to max valid, unique candidates. Every raw match must
// pass the person-name validator, and names are deduplicated against a
// request-scoped normalized set, so the extraction is idempotent when
// the same person surfaces through multiple angles or tiers. It stops
// the instant max candidates have been accepted.
func extractCandidates(text string, max int) []candidate {
	if max <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	accepted := make([]candidate, 0, max)

	for _, tier := range extractionTiers {
		if len(accepted) >= max {
			break
		}
		for _, re := range tier.patterns {
			if len(accepted) >= max {
				break
			}
			idx := re.SubexpIndex("name")
			for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
				if len(accepted) >= max {
					break
				}
				start, end := m[2*idx], m[2*idx+1]
				if start < 0 {
					continue
				}
				name := strings.TrimSpace(text[start:end])
				if !validPersonName(name) {
					continue
				}
				key := core.NormalizeName(name)
				if seen[key] {
					continue
				}
				seen[key] = true
				accepted = append(accepted, candidate{name: name, offset: start})
			}
		}
	}

	return accepted
}
