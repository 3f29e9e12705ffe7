package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashContent("jane doe"), HashContent("jane doe"))
	})

	t.Run("distinct content, distinct digest", func(t *testing.T) {
		assert.NotEqual(t, HashContent("jane doe"), HashContent("john doe"))
	})
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Jane Doe", "jane doe"},
		{"collapses whitespace", "Jane   \t Doe", "jane doe"},
		{"strips punctuation", "Jane O'Brien-Doe, Jr.", "jane obriendoe jr"},
		{"trims edges", "  Jane Doe  ", "jane doe"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestProspectID(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	t.Run("slug plus timestamp", func(t *testing.T) {
		assert.Equal(t, "jane-doe-1700000000000", ProspectID("Jane Doe", at))
	})

	t.Run("degenerate name still yields an id", func(t *testing.T) {
		id := ProspectID("...", at)
		assert.True(t, strings.HasPrefix(id, "prospect-"))
	})
}
