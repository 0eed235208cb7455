package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalYAML serializes the document to YAML text.
func (d *Document) MarshalYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent serializes the document to indented JSON text.
func (d *Document) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseDocument decodes an OpenAPI 3.x document from YAML or JSON text.
// It performs structural decoding only; semantic validation is the
// converter's concern.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if doc.OpenAPI == "" {
		return nil, fmt.Errorf("failed to parse OpenAPI document: missing openapi version field")
	}
	if _, ok := ParseVersion(doc.OpenAPI); !ok {
		return nil, fmt.Errorf("unsupported OpenAPI version %q", doc.OpenAPI)
	}
	return doc, nil
}
