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
	"fmt"
	"math"
	"strings"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
)

// Per-angle shares of the requested result count embedded in each query
// prompt. They sum to 120% on purpose: the pipeline over-fetches to
// compensate for candidates later lost to dedup and name validation.
const (
	directShare        = 0.5
	organizationShare  = 0.3
	philanthropicShare = 0.4
)

// Provider-internal result caps per angle, raised in deep-research mode.
const (
	directCapStandard        = 20
	directCapDeep            = 30
	organizationCapStandard  = 15
	organizationCapDeep      = 25
	philanthropicCapStandard = 15
	philanthropicCapDeep     = 25
)

// candidateSchema instructs the provider to emit candidates in a fixed
// line-oriented shape. Pushing structure into the generative step is what
// makes downstream extraction tractable.
const candidateSchema = `For each person, use exactly this format:
NAME: [full name]
TITLE: [current title or role]
COMPANY: [primary organization or affiliation]
LOCATION: [city, state]
MATCH REASON: [specific evidence they match the profile]
Only include real, living individuals with a public record.`

// planQueries turns one validated request into exactly three
// differently-angled queries against the same underlying intent.
func planQueries(req *core.DiscoveryRequest, excludeDomains []string) []*search.Query {
	depth := search.DepthStandard
	deep := req.DeepResearch
	if deep {
		depth = search.DepthDeep
	}

	scope := scopeClauses(req)

	direct := fmt.Sprintf(
		"Find specific named individuals matching this donor prospect profile: %s.%s List up to %d people. %s",
		req.Prompt, scope, shareCap(req.MaxResults, directShare), candidateSchema,
	)
	organization := fmt.Sprintf(
		"Identify executives, founders, and board members at organizations relevant to this donor prospect profile: %s.%s List up to %d people with their organizational roles. %s",
		req.Prompt, scope, shareCap(req.MaxResults, organizationShare), candidateSchema,
	)
	philanthropic := fmt.Sprintf(
		"Find foundation trustees, major charitable donors, and corporate insider filers matching this profile: %s.%s Include giving history and wealth signals. List up to %d people. %s",
		req.Prompt, scope, shareCap(req.MaxResults, philanthropicShare), candidateSchema,
	)

	return []*search.Query{
		{
			Text:           direct,
			Depth:          depth,
			OutputType:     search.OutputSourcedAnswer,
			MaxResults:     pick(deep, directCapDeep, directCapStandard),
			ExcludeDomains: excludeDomains,
		},
		{
			Text:           organization,
			Depth:          depth,
			OutputType:     search.OutputSourcedAnswer,
			MaxResults:     pick(deep, organizationCapDeep, organizationCapStandard),
			ExcludeDomains: excludeDomains,
		},
		{
			Text:           philanthropic,
			Depth:          depth,
			OutputType:     search.OutputSourcedAnswer,
			MaxResults:     pick(deep, philanthropicCapDeep, philanthropicCapStandard),
			ExcludeDomains: excludeDomains,
		},
	}
}

// scopeClauses renders the optional location and focus-area narrowing
// shared by all three angles.
func scopeClauses(req *core.DiscoveryRequest) string {
	var b strings.Builder

	if loc := req.Location; !loc.Empty() {
		parts := make([]string, 0, 3)
		for _, p := range []string{loc.City, loc.State, loc.Region} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		fmt.Fprintf(&b, " Focus on people located in or near %s.", strings.Join(parts, ", "))
	}

	if len(req.FocusAreas) > 0 {
		areas := make([]string, len(req.FocusAreas))
		for i, fa := range req.FocusAreas {
			areas[i] = string(fa)
		}
		fmt.Fprintf(&b, " Prioritize donors active in %s.", strings.Join(areas, ", "))
	}

	return b.String()
}

func shareCap(maxResults int, share float64) int {
	return int(math.Ceil(float64(maxResults) * share))
}

func pick(deep bool, deepValue, standardValue int) int {
	if deep {
		return deepValue
	}
	return standardValue
}
