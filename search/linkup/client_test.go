package linkup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/prospector/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *search.Config {
	return search.NewConfig(
		search.WithBaseURL(baseURL),
		search.WithAPIKey("lk-test"),
		search.WithTimeout(2*time.Second),
		search.WithMaxAttempts(3),
		search.WithRetryBaseDelay(time.Millisecond),
	)
}

func TestNewClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewClient(nil)
		assert.Equal(t, ErrConfigRequired, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		cfg := search.NewConfig(search.WithAPIKey(""))
		_, err := NewClient(cfg)
		assert.Equal(t, ErrAPIKeyRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		client, err := NewClient(testConfig("https://api.linkup.so"))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Bearer lk-test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deep", req["depth"])
		assert.Equal(t, "sourcedAnswer", req["outputType"])

		json.NewEncoder(w).Encode(map[string]any{
			"answer": "NAME: Jane Doe\nTITLE: CEO",
			"sources": []map[string]string{
				{"name": "Forbes", "url": "https://forbes.com/a", "snippet": "Jane Doe gave $5M"},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	result, err := client.Search(context.Background(), &search.Query{
		Text:       "find donors",
		Depth:      search.DepthDeep,
		MaxResults: 10,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Answer, "Jane Doe")
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "Forbes", result.Sources[0].Name)
}

func TestClient_Search_NilQuery(t *testing.T) {
	client, err := NewClient(testConfig("https://api.linkup.so"))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), nil)
	assert.Equal(t, search.ErrQueryRequired, err)
}

func TestClient_Search_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, search.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, search.ErrUnauthorized},
		{"payment required", http.StatusPaymentRequired, search.ErrInsufficientCredits},
		{"rate limited", http.StatusTooManyRequests, search.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, err := NewClient(testConfig(server.URL))
			require.NoError(t, err)

			_, err = client.Search(context.Background(), &search.Query{Text: "q", Depth: search.DepthStandard})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int32(1), calls.Load(), "permanent failures must not be retried")
		})
	}
}

func TestClient_Search_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"answer": "ok", "sources": []any{}})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	result, err := client.Search(context.Background(), &search.Query{Text: "q", Depth: search.DepthStandard})
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Answer)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Search_ExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), &search.Query{Text: "q", Depth: search.DepthStandard})
	assert.ErrorIs(t, err, search.ErrUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Status(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/credits/balance", r.URL.Path)
			w.Write([]byte(`{"balance": 100}`))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL))
		require.NoError(t, err)

		avail := client.Status(context.Background())
		assert.True(t, avail.Available)
		assert.Empty(t, avail.Reasons)
	})

	t.Run("rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL))
		require.NoError(t, err)

		avail := client.Status(context.Background())
		assert.False(t, avail.Available)
		assert.NotEmpty(t, avail.Reasons)
	})

	t.Run("unreachable", func(t *testing.T) {
		client, err := NewClient(testConfig("http://127.0.0.1:1"))
		require.NoError(t, err)

		avail := client.Status(context.Background())
		assert.False(t, avail.Available)
		assert.NotEmpty(t, avail.Reasons)
	})
}
