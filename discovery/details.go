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
	"sort"
	"strings"
)

// Context window bounds around a matched name, in bytes.
const (
	windowBefore = 50
	windowAfter  = 500
)

const (
	maxTitleLength   = 100
	minCompanyLength = 3
	maxCompanyLength = 100
	minReasonLength  = 10
	maxReasonLength  = 200
	maxMatchReasons  = 3
)

var (
	titleTag = regexp.MustCompile(`(?m)(?:\*\*)?(?:TITLE|ROLE)(?:\*\*)?:[ \t]*(?P<v>[^\n]+)`)
	roleWord = regexp.MustCompile(`(?i)\b(?:Chief Executive Officer|Executive Director|Managing Director|Vice President|Board Member|Co-Founder|Chairwoman|Chairman|President|Director|Founder|Trustee|Partner|Principal|Philanthropist|CEO|CFO|COO)\b`)

	companyTag = regexp.MustCompile(`(?m)(?:\*\*)?(?:COMPANY|ORGANIZATION|AFFILIATION)(?:\*\*)?:[ \t]*(?P<v>[^\n]+)`)
	orgPhrase  = regexp.MustCompile(`\b(?:at|of|with) (?P<org>[A-Z][A-Za-z0-9&'. -]{0,80}?(?:Inc|LLC|LLP|Corp|Corporation|Company|Foundation|Fund|Trust|Group|Partners|Capital|Ventures|Holdings|University|Institute|Charities)\b\.?)`)

	locationTag = regexp.MustCompile(`(?m)(?:\*\*)?LOCATION(?:\*\*)?:[ \t]*(?P<city>[A-Za-z .'-]+?)\s*,\s*(?P<state>[A-Za-z]+(?: [A-Za-z]+)?)`)

	reasonTag = regexp.MustCompile(`(?m)(?:\*\*)?(?:MATCH REASON|EVIDENCE|WHY|REASON)(?:\*\*)?:[ \t]*(?P<v>[^\n]+)`)

	reasonPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b((?:serves on|trustee of|sits on|member of) the? ?(?:board|foundation)[^.\n]{0,120})`),
		regexp.MustCompile(`(?i)\b((?:founded|co-founded|founder of)[^.\n]{5,120})`),
		regexp.MustCompile(`(?i)\b((?:donated|gave|pledged|contributed|gift of)\s*\$[^.\n]{1,120})`),
	}
)

// cityStatePattern matches "City, State" or "City, ST" co-occurrences in
// free text. State names sort longest-first so "West Virginia" wins over
// "Virginia".
var cityStatePattern = func() *regexp.Regexp {
	names := make([]string, 0, len(stateAbbrevs))
	for name := range stateAbbrevs {
		names = append(names, regexp.QuoteMeta(name))
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return regexp.MustCompile(
		`(?P<city>[A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+)*), (?P<state>[A-Z]{2}\b|(?i:` + strings.Join(names, "|") + `)\b)`)
}()

// stateNamePattern matches a bare full state name, the last-resort
// location scan. Two-letter codes are deliberately excluded here: bare
// "IN", "OR", or "ME" in prose are almost never states.
var stateNamePattern = func() *regexp.Regexp {
	names := make([]string, 0, len(stateAbbrevs))
	for name := range stateAbbrevs {
		names = append(names, regexp.QuoteMeta(name))
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return regexp.MustCompile(`(?i)\b(?P<state>` + strings.Join(names, "|") + `)\b`)
}()

// contextWindow returns the bounded span around a name match used for
// detail mining: a little context before the name, substantially more
// after, where the structured fields tend to follow.
func contextWindow(text string, offset int) string {
	start := offset - windowBefore
	if start < 0 {
		start = 0
	}
	end := offset + windowAfter
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// extractTitle mines a title from the window: explicit TITLE:/ROLE: tag
// first, else the first role keyword in context.
func extractTitle(window string) string {
	if m := titleTag.FindStringSubmatch(window); m != nil {
		return truncate(cleanField(m[1]), maxTitleLength)
	}
	if m := roleWord.FindString(window); m != "" {
		return truncate(m, maxTitleLength)
	}
	return ""
}

// extractCompany mines an affiliation: explicit tag first, else an
// "at/of/with <Org Suffix>" phrase. Values outside (3,100) characters
// after cleanup are discarded.
func extractCompany(window string) string {
	if m := companyTag.FindStringSubmatch(window); m != nil {
		if v := cleanField(m[1]); len(v) > minCompanyLength && len(v) <= maxCompanyLength {
			return v
		}
	}
	if m := orgPhrase.FindStringSubmatch(window); m != nil {
		if v := cleanField(m[1]); len(v) > minCompanyLength && len(v) <= maxCompanyLength {
			return v
		}
	}
	return ""
}

// extractLocation mines a city and canonical 2-letter state code.
// Priority: explicit LOCATION: tag, then a "City, State" co-occurrence
// scan, then a bare state-name scan. A tag whose state part cannot be
// canonicalized is rejected, not guessed at.
func extractLocation(window string) (city, state string) {
	if m := locationTag.FindStringSubmatch(window); m != nil {
		if code, ok := normalizeState(m[2]); ok {
			return cleanField(m[1]), code
		}
	}
	if m := cityStatePattern.FindStringSubmatch(window); m != nil {
		if code, ok := normalizeState(m[2]); ok {
			return cleanField(m[1]), code
		}
	}
	if m := stateNamePattern.FindStringSubmatch(window); m != nil {
		if code, ok := normalizeState(m[1]); ok {
			return "", code
		}
	}
	return "", ""
}

// extractReasons mines up to three match rationales: explicit tags
// first, then heuristic giving/board/founding phrases.
func extractReasons(window string) []string {
	reasons := make([]string, 0, maxMatchReasons)

	for _, m := range reasonTag.FindAllStringSubmatch(window, -1) {
		if len(reasons) >= maxMatchReasons {
			return reasons
		}
		if v := cleanField(m[1]); len(v) >= minReasonLength && len(v) <= maxReasonLength {
			reasons = append(reasons, v)
		}
	}
	if len(reasons) > 0 {
		return reasons
	}

	for _, re := range reasonPhrases {
		if len(reasons) >= maxMatchReasons {
			break
		}
		if m := re.FindStringSubmatch(window); m != nil {
			if v := cleanField(m[1]); len(v) >= minReasonLength && len(v) <= maxReasonLength {
				reasons = append(reasons, v)
			}
		}
	}
	return reasons
}

// cleanField trims whitespace, markdown emphasis, and trailing
// punctuation from a mined value.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_")
	s = strings.TrimRight(s, ".,;:")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}
