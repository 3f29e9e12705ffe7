package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api.linkup.so", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithBaseURL("https://linkup.example.com/"),
		WithAPIKey("lk-test"),
		WithTimeout(5*time.Second),
		WithMaxAttempts(1),
		WithRetryBaseDelay(10*time.Millisecond),
		WithLLMHost("http://localhost:9100"),
		WithLLMModel("gpt-4o-mini"),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://linkup.example.com", cfg.BaseURL, "trailing slash trimmed")
	assert.Equal(t, "lk-test", cfg.APIKey)
	assert.Equal(t, "http://localhost:9100/v1", cfg.LLMHost, "v1 suffix appended")
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		cfg := NewConfig(WithBaseURL(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := NewConfig(WithTimeout(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero attempts", func(t *testing.T) {
		cfg := NewConfig(WithMaxAttempts(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero retry delay", func(t *testing.T) {
		cfg := NewConfig(WithRetryBaseDelay(0))
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_Normalize_LLMHostAlreadySuffixed(t *testing.T) {
	cfg := NewConfig(WithLLMHost("http://localhost:11434/v1"))
	cfg.Normalize()
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLMHost)
}
