package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	schemas := NewSchemaMap()
	props := NewSchemaMap()
	props.Set("id", &Schema{Type: "string"})
	schemas.Set("Widget", &Schema{Type: "object", Properties: props, Required: []string{"id"}})

	return &Document{
		OpenAPI: "3.0.3",
		Info:    &Info{Title: "Widget Service", Version: "1.0.0"},
		Paths: Paths{
			"/widgets/{id}": &PathItem{
				Get: &Operation{
					OperationID: "GetWidget",
					Responses: map[string]*Response{
						"200": {
							Description: "GetWidget 200 response",
							Content: map[string]*MediaType{
								"application/json": {Schema: &Schema{Ref: "#/components/schemas/Widget"}},
							},
						},
					},
				},
			},
		},
		Components: &Components{Schemas: schemas},
	}
}

func TestDocumentMarshalYAML(t *testing.T) {
	doc := sampleDocument()
	data, err := doc.MarshalYAML()
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "openapi: 3.0.3")
	assert.Contains(t, text, "/widgets/{id}")
	assert.Contains(t, text, "$ref: '#/components/schemas/Widget'")

	// Marshaling is stable.
	data2, err := doc.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}

func TestDocumentMarshalJSONIndent(t *testing.T) {
	data, err := sampleDocument().MarshalJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.0.3"`)
}

func TestParseDocument(t *testing.T) {
	data, err := sampleDocument().MarshalYAML()
	require.NoError(t, err)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.Contains(t, doc.Paths, "/widgets/{id}")
	assert.Equal(t, "GetWidget", doc.Paths["/widgets/{id}"].Get.OperationID)
	require.NotNil(t, doc.Components)
	assert.Equal(t, []string{"Widget"}, doc.Components.Schemas.Names())
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not yaml", input: "\t{"},
		{name: "missing version", input: "info:\n  title: x\n"},
		{name: "unsupported version", input: "openapi: 2.0\ninfo:\n  title: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestPathItemOperations(t *testing.T) {
	pi := &PathItem{}
	op := &Operation{OperationID: "X"}
	for _, method := range Methods {
		assert.True(t, pi.SetOperation(method, op))
		assert.Same(t, op, pi.Operation(method))
		assert.True(t, pi.SetOperation(method, nil))
		assert.Nil(t, pi.Operation(method))
	}
	assert.False(t, pi.SetOperation("connect", op))
	assert.Nil(t, pi.Operation("connect"))
}

func TestParseVersion(t *testing.T) {
	v, ok := ParseVersion("3.0")
	require.True(t, ok)
	assert.Equal(t, Version30, v)
	assert.Equal(t, "3.0", v.String())
	assert.Equal(t, "3.0.3", v.DocumentVersion())

	v, ok = ParseVersion("3.1.0")
	require.True(t, ok)
	assert.Equal(t, Version31, v)

	_, ok = ParseVersion("2.0")
	assert.False(t, ok)
	assert.False(t, VersionUnknown.IsValid())
	assert.Equal(t, "unknown", VersionUnknown.String())
	assert.Equal(t, "", VersionUnknown.DocumentVersion())
}
