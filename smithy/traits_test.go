package smithy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTraitOf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  *HTTPTrait
	}{
		{
			name:  "full binding",
			value: map[string]any{"method": "PUT", "uri": "/widgets/{id}", "code": 201},
			want:  &HTTPTrait{Method: "PUT", URI: "/widgets/{id}", Code: 201},
		},
		{
			name:  "default code",
			value: map[string]any{"method": "GET", "uri": "/widgets"},
			want:  &HTTPTrait{Method: "GET", URI: "/widgets", Code: 200},
		},
		{
			name:  "missing method",
			value: map[string]any{"uri": "/widgets"},
		},
		{
			name:  "not an object",
			value: "GET /widgets",
		},
		{
			name: "nil value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HTTPTraitOf(tt.value)
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLengthTraitOf(t *testing.T) {
	lt, ok := LengthTraitOf(map[string]any{"min": 1, "max": 64})
	require.True(t, ok)
	require.NotNil(t, lt.Min)
	require.NotNil(t, lt.Max)
	assert.Equal(t, int64(1), *lt.Min)
	assert.Equal(t, int64(64), *lt.Max)

	// JSON decoding yields float64 numbers.
	lt, ok = LengthTraitOf(map[string]any{"max": float64(10)})
	require.True(t, ok)
	assert.Nil(t, lt.Min)
	assert.Equal(t, int64(10), *lt.Max)

	_, ok = LengthTraitOf(map[string]any{})
	assert.False(t, ok)
	_, ok = LengthTraitOf(42)
	assert.False(t, ok)
}

func TestRangeTraitOf(t *testing.T) {
	rt, ok := RangeTraitOf(map[string]any{"min": float64(0.5), "max": 100})
	require.True(t, ok)
	assert.Equal(t, 0.5, *rt.Min)
	assert.Equal(t, float64(100), *rt.Max)

	_, ok = RangeTraitOf("0..100")
	assert.False(t, ok)
}

func TestDeprecatedTraitOf(t *testing.T) {
	dt := DeprecatedTraitOf(map[string]any{"message": "use v2", "since": "1.3"})
	assert.Equal(t, "use v2", dt.Message)
	assert.Equal(t, "1.3", dt.Since)

	// Empty object is a valid deprecated trait.
	dt = DeprecatedTraitOf(map[string]any{})
	assert.Empty(t, dt.Message)
}

func TestExternalDocsTraitOf(t *testing.T) {
	ed, ok := ExternalDocsTraitOf(map[string]any{"API Reference": "https://example.com/docs"})
	require.True(t, ok)
	assert.Equal(t, "https://example.com/docs", ed["API Reference"])

	_, ok = ExternalDocsTraitOf(map[string]any{})
	assert.False(t, ok)
}

func TestAPIKeyAuthTraitOf(t *testing.T) {
	ak, ok := APIKeyAuthTraitOf(map[string]any{"name": "X-Api-Key", "in": "header"})
	require.True(t, ok)
	assert.Equal(t, "X-Api-Key", ak.Name)
	assert.Equal(t, "header", ak.In)

	_, ok = APIKeyAuthTraitOf(map[string]any{"name": "X-Api-Key"})
	assert.False(t, ok)
}

func TestTagsTraitOf(t *testing.T) {
	tags := TagsTraitOf([]any{"alpha", "beta", 3})
	assert.Equal(t, []string{"alpha", "beta"}, tags)
	assert.Nil(t, TagsTraitOf("alpha"))
}
