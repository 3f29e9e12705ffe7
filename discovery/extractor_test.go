package discovery

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(candidates []candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func TestExtractCandidates(t *testing.T) {
	t.Run("tagged names extracted first", func(t *testing.T) {
		text := "NAME: Helen Osei\nTITLE: Executive Director\n\nNAME: Marcus Webb\nTITLE: Trustee"
		got := extractCandidates(text, 10)
		assert.Equal(t, []string{"Helen Osei", "Marcus Webb"}, names(got))
	})

	t.Run("markdown bold tags", func(t *testing.T) {
		text := "**NAME**: Helen Osei\n**TITLE**: Executive Director"
		got := extractCandidates(text, 10)
		assert.Equal(t, []string{"Helen Osei"}, names(got))
	})

	t.Run("role adjacency", func(t *testing.T) {
		text := "The gala was chaired by Priya Raman, Trustee of the Raman Family Foundation. " +
			"Daniel Okafor is the president of Lakeshore Capital. " +
			"CEO Alice Mwangi also attended."
		got := extractCandidates(text, 10)
		assert.ElementsMatch(t,
			[]string{"Priya Raman", "Daniel Okafor", "Alice Mwangi"},
			names(got))
	})

	t.Run("emphasis fallback", func(t *testing.T) {
		text := "Notable attendees included **Robert Chen** and \"Maria Santos\" among others."
		got := extractCandidates(text, 10)
		assert.ElementsMatch(t, []string{"Robert Chen", "Maria Santos"}, names(got))
	})

	t.Run("duplicates across tiers collapse", func(t *testing.T) {
		text := "NAME: Helen Osei\n\nLater, Helen Osei, Trustee of Westside Charities, spoke. " +
			"The program also listed **Helen Osei**."
		got := extractCandidates(text, 10)
		require.Len(t, got, 1)
		assert.Equal(t, "Helen Osei", got[0].name)
	})

	t.Run("dedup ignores case and punctuation", func(t *testing.T) {
		text := "NAME: Mary-Anne O'Brien\n\n**MARY-ANNE O'BRIEN** gave the keynote."
		got := extractCandidates(text, 10)
		assert.Len(t, got, 1)
	})

	t.Run("placeholder names rejected", func(t *testing.T) {
		text := "NAME: John Doe\nNAME: Test User\nNAME: Helen Osei"
		got := extractCandidates(text, 10)
		assert.Equal(t, []string{"Helen Osei"}, names(got))
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		text := "NAME: Helen Osei\nNAME: Marcus Webb"
		first := extractCandidates(text, 10)
		second := extractCandidates(text, 10)
		assert.Equal(t, names(first), names(second))
	})

	t.Run("stops at the cap", func(t *testing.T) {
		var b strings.Builder
		surnames := []string{"Adams", "Baker", "Clark", "Davis", "Evans", "Foster", "Green", "Hayes"}
		for _, s := range surnames {
			fmt.Fprintf(&b, "NAME: Anna %s\n", s)
		}
		got := extractCandidates(b.String(), 5)
		assert.Len(t, got, 5)
	})

	t.Run("non-positive cap yields nothing", func(t *testing.T) {
		assert.Nil(t, extractCandidates("NAME: Helen Osei", 0))
	})

	t.Run("offsets point at the name", func(t *testing.T) {
		text := "intro text NAME: Helen Osei"
		got := extractCandidates(text, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "Helen Osei", text[got[0].offset:got[0].offset+len("Helen Osei")])
	})
}
