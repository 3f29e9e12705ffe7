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
	"strings"

	"github.com/poiesic/prospector/core"
)

// maxProspectSources caps how many corroborating sources are attached
// to one prospect.
const maxProspectSources = 3

// scoreConfidence derives a confidence tier from source corroboration
// and field completeness. Confidence is never asserted by the extraction
// source; it is computed here, starting from low.
//
// The candidate's surname is matched case-insensitively against each
// aggregated source's name and snippet. Two or more matching sources
// yield high; exactly one yields medium; none, with both a title and
// company extracted, promotes low to medium. A single uncorroborated
// source can never reach high regardless of field completeness.
func scoreConfidence(name, title, company string, sources []core.Source) (core.Confidence, []core.Source) {
	surname := surnameOf(name)

	matched := make([]core.Source, 0, maxProspectSources)
	for _, src := range sources {
		if len(matched) >= maxProspectSources {
			break
		}
		if strings.Contains(strings.ToLower(src.Name), surname) ||
			strings.Contains(strings.ToLower(src.Snippet), surname) {
			matched = append(matched, src)
		}
	}

	switch {
	case len(matched) >= 2:
		return core.ConfidenceHigh, matched
	case len(matched) == 1:
		return core.ConfidenceMedium, matched
	case title != "" && company != "":
		return core.ConfidenceMedium, matched
	default:
		return core.ConfidenceLow, matched
	}
}

func surnameOf(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return strings.ToLower(name)
	}
	return strings.ToLower(parts[len(parts)-1])
}
