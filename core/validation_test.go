package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() *RawRequest {
	return &RawRequest{
		Prompt:     "Wealthy technology executives in Texas interested in education philanthropy",
		MaxResults: 10,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	req, problems := ValidateRequest(validRaw())
	require.Empty(t, problems)
	require.NotNil(t, req)
	assert.Equal(t, 10, req.MaxResults)
	assert.False(t, req.DeepResearch)
}

func TestValidateRequest_NilBody(t *testing.T) {
	req, problems := ValidateRequest(nil)
	assert.Nil(t, req)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "required")
}

func TestValidateRequest_Prompt(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = ""
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		assert.NotEmpty(t, problems)
	})

	t.Run("too short", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "donors"
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "at least")
	})

	t.Run("too long", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = strings.Repeat("philanthropy ", 200)
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "at most")
	})

	t.Run("trivial input rejected", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "hello world"
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		assert.NotEmpty(t, problems)
	})

	t.Run("pure punctuation rejected", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "??? !!! ... --- ***"
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		assert.NotEmpty(t, problems)
	})

	t.Run("too few meaningful words", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "a an of to donors in at"
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "meaningful")
	})

	t.Run("script tags stripped", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "Wealthy <script>alert('x')</script> technology executives funding education programs"
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.NotContains(t, req.Prompt, "script")
		assert.NotContains(t, req.Prompt, "alert")
	})

	t.Run("unsafe protocols stripped", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "Major donors javascript:void(0) supporting children hospitals nationwide"
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.NotContains(t, strings.ToLower(req.Prompt), "javascript:")
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		raw := validRaw()
		raw.Prompt = "Wealthy    technology\t\texecutives funding\n\neducation programs"
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Equal(t, "Wealthy technology executives funding education programs", req.Prompt)
	})
}

func TestClampMaxResults(t *testing.T) {
	t.Run("standard mode", func(t *testing.T) {
		assert.Equal(t, StandardDefaultResults, ClampMaxResults(0, false))
		assert.Equal(t, StandardMinResults, ClampMaxResults(1, false))
		assert.Equal(t, StandardMaxResults, ClampMaxResults(100, false))
		assert.Equal(t, 12, ClampMaxResults(12, false))
	})

	t.Run("deep mode", func(t *testing.T) {
		assert.Equal(t, DeepDefaultResults, ClampMaxResults(0, true))
		assert.Equal(t, DeepMinResults, ClampMaxResults(-3, true))
		assert.Equal(t, DeepMaxResults, ClampMaxResults(25, true))
		assert.Equal(t, 3, ClampMaxResults(3, true))
	})
}

func TestValidateRequest_Location(t *testing.T) {
	t.Run("kept when populated", func(t *testing.T) {
		raw := validRaw()
		raw.Location = &RawLocation{City: "Dallas", State: "TX"}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		require.NotNil(t, req.Location)
		assert.Equal(t, "Dallas", req.Location.City)
		assert.Equal(t, "TX", req.Location.State)
	})

	t.Run("dropped when empty", func(t *testing.T) {
		raw := validRaw()
		raw.Location = &RawLocation{}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Nil(t, req.Location)
	})

	t.Run("dropped when only whitespace", func(t *testing.T) {
		raw := validRaw()
		raw.Location = &RawLocation{City: "   ", Region: "\t"}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Nil(t, req.Location)
	})

	t.Run("over-long field rejected", func(t *testing.T) {
		raw := validRaw()
		raw.Location = &RawLocation{City: strings.Repeat("x", 150)}
		req, problems := ValidateRequest(raw)
		assert.Nil(t, req)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "city")
	})
}

func TestValidateRequest_FocusAreas(t *testing.T) {
	t.Run("unknown values discarded without failing", func(t *testing.T) {
		raw := validRaw()
		raw.FocusAreas = []string{"education", "crypto", "arts"}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Equal(t, []FocusArea{FocusEducation, FocusArts}, req.FocusAreas)
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		raw := validRaw()
		raw.FocusAreas = []string{"healthcare", "Healthcare", " healthcare "}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Equal(t, []FocusArea{FocusHealthcare}, req.FocusAreas)
	})

	t.Run("all unknown yields none", func(t *testing.T) {
		raw := validRaw()
		raw.FocusAreas = []string{"sports", "gaming"}
		req, problems := ValidateRequest(raw)
		require.Empty(t, problems)
		assert.Nil(t, req.FocusAreas)
	})
}

func TestParseFocusArea(t *testing.T) {
	for _, fa := range FocusAreas {
		got, ok := ParseFocusArea(string(fa))
		assert.True(t, ok)
		assert.Equal(t, fa, got)
	}
	_, ok := ParseFocusArea("astrology")
	assert.False(t, ok)
}
