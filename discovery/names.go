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
	"unicode"

	"github.com/poiesic/prospector/core"
)

const (
	minNameLength = 4
	maxNameLength = 100
	minNameParts  = 2
)

// placeholderNames rejects generative filler that pattern-matches a real
// name but identifies nobody. Keyed by normalized name.
var placeholderNames = map[string]bool{
	"john doe":        true,
	"jane roe":        true,
	"test user":       true,
	"sample name":     true,
	"full name":       true,
	"first last":      true,
	"not available":   true,
	"not applicable":  true,
	"unknown person":  true,
	"anonymous donor": true,
}

// validPersonName reports whether a raw extraction match plausibly names
// a real person. Every tier's matches pass through here before
// acceptance.
//
// Rules: 2+ space-separated parts with 2+ letters each; characters
// restricted to letters, hyphens, apostrophes, and spaces; must start
// with a capital letter; total length within [4,100]; not a denylisted
// placeholder.
func validPersonName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < minNameLength || len(name) > maxNameLength {
		return false
	}

	first, _ := firstRune(name)
	if !unicode.IsUpper(first) {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '’' && r != ' ' {
			return false
		}
	}

	parts := strings.Fields(name)
	if len(parts) < minNameParts {
		return false
	}
	for _, part := range parts {
		letters := 0
		for _, r := range part {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if letters < 2 {
			return false
		}
	}

	return !placeholderNames[core.NormalizeName(name)]
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
