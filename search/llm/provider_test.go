package llm

import (
	"testing"

	"github.com/poiesic/prospector/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewProvider(nil)
		assert.Equal(t, ErrConfigRequired, err)
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := search.NewConfig(search.WithLLMModel(""))
		_, err := NewProvider(cfg)
		assert.Equal(t, ErrModelRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		p, err := NewProvider(search.NewConfig())
		require.NoError(t, err)
		assert.NotNil(t, p)
		assert.True(t, p.Status(t.Context()).Available)
	})
}

func TestSplitSources(t *testing.T) {
	t.Run("answer with sources block", func(t *testing.T) {
		text := "NAME: Jane Doe\nTITLE: CEO\nSOURCES:\nForbes | https://forbes.com/a | Jane Doe gave $5M\nWSJ | https://wsj.com/b"
		answer, sources := splitSources(text)
		assert.Equal(t, "NAME: Jane Doe\nTITLE: CEO", answer)
		require.Len(t, sources, 2)
		assert.Equal(t, "Forbes", sources[0].Name)
		assert.Equal(t, "https://forbes.com/a", sources[0].URL)
		assert.Equal(t, "Jane Doe gave $5M", sources[0].Snippet)
		assert.Empty(t, sources[1].Snippet)
	})

	t.Run("no sources block", func(t *testing.T) {
		answer, sources := splitSources("NAME: Jane Doe")
		assert.Equal(t, "NAME: Jane Doe", answer)
		assert.Nil(t, sources)
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		text := "answer\nSOURCES:\nnot a source line\n | https://x.com | missing name\nGood | https://good.com"
		_, sources := splitSources(text)
		require.Len(t, sources, 1)
		assert.Equal(t, "Good", sources[0].Name)
	})
}
