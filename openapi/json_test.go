package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONKeepsExtensions(t *testing.T) {
	schemas := NewSchemaMap()
	secret := &Schema{Type: "string"}
	secret.SetExtension("x-smithy-sensitive", map[string]any{})
	schemas.Set("Secret", secret)

	doc := &Document{
		OpenAPI: "3.0.3",
		Info: &Info{
			Title:   "Vault",
			Version: "1.0.0",
			Extra:   map[string]any{"x-smithy-tags": []any{"internal"}},
		},
		Paths: Paths{
			"/secrets": &PathItem{
				Get: &Operation{
					OperationID: "ListSecrets",
					Responses: map[string]*Response{
						"200": {
							Description: "ListSecrets 200 response",
							Content: map[string]*MediaType{
								"application/json": {Schema: &Schema{Ref: "#/components/schemas/Secret"}},
							},
						},
					},
					Extra: map[string]any{"x-smithy-idempotent": map[string]any{}},
				},
			},
		},
		Components: &Components{Schemas: schemas},
	}

	yamlText, err := doc.MarshalYAML()
	require.NoError(t, err)
	jsonText, err := doc.MarshalJSONIndent("", "  ")
	require.NoError(t, err)

	// Both renderings carry the same extensions.
	for _, text := range []string{string(yamlText), string(jsonText)} {
		assert.Contains(t, text, "x-smithy-sensitive")
		assert.Contains(t, text, "x-smithy-tags")
		assert.Contains(t, text, "x-smithy-idempotent")
	}

	// The JSON form stays a valid document and round-trips the extensions.
	parsed, err := ParseDocument(jsonText)
	require.NoError(t, err)
	require.Contains(t, parsed.Info.Extra, "x-smithy-tags")
	assert.Contains(t, parsed.Components.Schemas.Get("Secret").Extra, "x-smithy-sensitive")
}

func TestMarshalWithExtensionsSplicing(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		want   string
	}{
		{
			name:   "no extensions",
			schema: &Schema{Type: "string"},
			want:   `{"type":"string"}`,
		},
		{
			name: "fields and extensions",
			schema: &Schema{
				Type:  "string",
				Extra: map[string]any{"x-smithy-sensitive": map[string]any{}},
			},
			want: `{"type":"string","x-smithy-sensitive":{}}`,
		},
		{
			name:   "extensions only",
			schema: &Schema{Extra: map[string]any{"x-note": "hi"}},
			want:   `{"x-note":"hi"}`,
		},
		{
			name:   "empty schema",
			schema: &Schema{},
			want:   `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}
