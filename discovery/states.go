package discovery

import "strings"

// stateAbbrevs maps lowercased full US state names to their canonical
// two-letter codes.
var stateAbbrevs = map[string]string{
	"alabama":        "AL",
	"alaska":         "AK",
	"arizona":        "AZ",
	"arkansas":       "AR",
	"california":     "CA",
	"colorado":       "CO",
	"connecticut":    "CT",
	"delaware":       "DE",
	"florida":        "FL",
	"georgia":        "GA",
	"hawaii":         "HI",
	"idaho":          "ID",
	"illinois":       "IL",
	"indiana":        "IN",
	"iowa":           "IA",
	"kansas":         "KS",
	"kentucky":       "KY",
	"louisiana":      "LA",
	"maine":          "ME",
	"maryland":       "MD",
	"massachusetts":  "MA",
	"michigan":       "MI",
	"minnesota":      "MN",
	"mississippi":    "MS",
	"missouri":       "MO",
	"montana":        "MT",
	"nebraska":       "NE",
	"nevada":         "NV",
	"new hampshire":  "NH",
	"new jersey":     "NJ",
	"new mexico":     "NM",
	"new york":       "NY",
	"north carolina": "NC",
	"north dakota":   "ND",
	"ohio":           "OH",
	"oklahoma":       "OK",
	"oregon":         "OR",
	"pennsylvania":   "PA",
	"rhode island":   "RI",
	"south carolina": "SC",
	"south dakota":   "SD",
	"tennessee":      "TN",
	"texas":          "TX",
	"utah":           "UT",
	"vermont":        "VT",
	"virginia":       "VA",
	"washington":     "WA",
	"west virginia":  "WV",
	"wisconsin":      "WI",
	"wyoming":        "WY",
}

// validAbbrevs is the reverse index of canonical codes.
var validAbbrevs = func() map[string]bool {
	m := make(map[string]bool, len(stateAbbrevs))
	for _, code := range stateAbbrevs {
		m[code] = true
	}
	return m
}()

// normalizeState canonicalizes a state name or abbreviation to its
// two-letter code. Ambiguous or partial values (a two-character fragment
// that is not itself a valid code, a truncated name) are rejected rather
// than guessed.
func normalizeState(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if len(s) == 2 {
		code := strings.ToUpper(s)
		if validAbbrevs[code] {
			return code, true
		}
		return "", false
	}
	if code, ok := stateAbbrevs[strings.ToLower(s)]; ok {
		return code, true
	}
	return "", false
}
