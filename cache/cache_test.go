package cache

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuery() *search.Query {
	return &search.Query{
		Text:       "find foundation trustees in Colorado",
		Depth:      search.DepthStandard,
		MaxResults: 20,
	}
}

func testResult() *search.Result {
	return &search.Result{
		Answer: "NAME: Helen Osei\nTITLE: Trustee",
		Sources: []core.Source{
			{Name: "Osei Foundation", URL: "https://example.org/osei", Snippet: "annual report"},
			{Name: "Local News", URL: "https://example.org/news"},
		},
	}
}

func TestOpen_FileSystem(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, testQuery(), testResult()))
	got, ok := c.Get(ctx, testQuery())
	require.True(t, ok)
	assert.Equal(t, testResult(), got)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrPathRequired)
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := OpenMemory()
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()

	t.Run("miss before put", func(t *testing.T) {
		got, ok := c.Get(ctx, testQuery())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("hit after put", func(t *testing.T) {
		require.NoError(t, c.Put(ctx, testQuery(), testResult()))
		got, ok := c.Get(ctx, testQuery())
		require.True(t, ok)
		assert.Equal(t, testResult().Answer, got.Answer)
		assert.Equal(t, testResult().Sources, got.Sources)
	})

	t.Run("depth participates in the key", func(t *testing.T) {
		deep := testQuery()
		deep.Depth = search.DepthDeep
		_, ok := c.Get(ctx, deep)
		assert.False(t, ok, "a deep query must not be served a standard response")
	})

	t.Run("result cap participates in the key", func(t *testing.T) {
		capped := testQuery()
		capped.MaxResults = 5
		_, ok := c.Get(ctx, capped)
		assert.False(t, ok)
	})

	t.Run("sourceless result survives", func(t *testing.T) {
		query := &search.Query{Text: "empty answer query", Depth: search.DepthStandard}
		require.NoError(t, c.Put(ctx, query, &search.Result{Answer: "nothing found"}))
		got, ok := c.Get(ctx, query)
		require.True(t, ok)
		assert.Equal(t, "nothing found", got.Answer)
		assert.Empty(t, got.Sources)
	})
}

func TestCacheTTL(t *testing.T) {
	c, err := OpenMemory(WithTTL(50 * time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, testQuery(), testResult()))

	_, ok := c.Get(ctx, testQuery())
	require.True(t, ok)

	time.Sleep(100 * time.Millisecond)

	_, ok = c.Get(ctx, testQuery())
	assert.False(t, ok, "entries past their TTL must miss")
}

func TestCacheClosed(t *testing.T) {
	c, err := OpenMemory()
	require.NoError(t, err)
	require.NoError(t, c.Close())

	ctx := context.Background()
	_, ok := c.Get(ctx, testQuery())
	assert.False(t, ok)
	assert.ErrorIs(t, c.Put(ctx, testQuery(), testResult()), ErrClosed)
}

func TestResultSerialization(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := testResult()
		got, err := UnmarshalResult(MarshalResult(original))
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})

	t.Run("truncated data fails", func(t *testing.T) {
		data := MarshalResult(testResult())
		_, err := UnmarshalResult(data[:len(data)/2])
		assert.Error(t, err)
	})
}
