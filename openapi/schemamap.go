package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// SchemaMap is an insertion-ordered name → *Schema mapping. The components
// registry and object property lists use it so that converting the same
// input twice yields byte-identical output: plain Go maps would reorder
// entries on every run.
type SchemaMap struct {
	names   []string
	entries map[string]*Schema
}

// NewSchemaMap returns an empty ordered schema map.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{entries: make(map[string]*Schema)}
}

// Set inserts or replaces the named schema. Insertion order is preserved;
// replacing an existing entry keeps its original position.
func (sm *SchemaMap) Set(name string, schema *Schema) {
	if sm.entries == nil {
		sm.entries = make(map[string]*Schema)
	}
	if _, exists := sm.entries[name]; !exists {
		sm.names = append(sm.names, name)
	}
	sm.entries[name] = schema
}

// Get returns the named schema, or nil if absent.
func (sm *SchemaMap) Get(name string) *Schema {
	if sm == nil {
		return nil
	}
	return sm.entries[name]
}

// Has returns true when the named schema exists.
func (sm *SchemaMap) Has(name string) bool {
	if sm == nil {
		return false
	}
	_, ok := sm.entries[name]
	return ok
}

// Names returns the schema names in insertion order.
// The returned slice must not be mutated.
func (sm *SchemaMap) Names() []string {
	if sm == nil {
		return nil
	}
	return sm.names
}

// Len returns the number of entries.
func (sm *SchemaMap) Len() int {
	if sm == nil {
		return 0
	}
	return len(sm.names)
}

// MarshalYAML encodes entries as a mapping in insertion order.
func (sm *SchemaMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range sm.names {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(sm.entries[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping node, preserving key order.
func (sm *SchemaMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got %v", node.Kind)
	}
	sm.names = nil
	sm.entries = make(map[string]*Schema, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("invalid schema name: %w", err)
		}
		schema := &Schema{}
		if err := node.Content[i+1].Decode(schema); err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
		sm.Set(name, schema)
	}
	return nil
}

// MarshalJSON encodes entries as a JSON object in insertion order.
func (sm *SchemaMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range sm.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(sm.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object. Order follows the source document via
// the YAML decoder, which accepts JSON input.
func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return sm.UnmarshalYAML(node.Content[0])
	}
	return sm.UnmarshalYAML(&node)
}
