package smithy

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// DecodeAST decodes a Smithy JSON AST document
// ({"smithy": "2.0", "shapes": {...}}) into a Model. The YAML decoder is a
// strict superset of JSON, so both JSON and YAML renderings of the AST are
// accepted. Shape order follows document order.
func DecodeAST(data []byte) (*Model, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode Smithy AST: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("failed to decode Smithy AST: empty document")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to decode Smithy AST: root is not an object")
	}

	model := NewModel()
	for i := 0; i+1 < len(doc.Content); i += 2 {
		var key string
		if err := doc.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("failed to decode Smithy AST key: %w", err)
		}
		valNode := doc.Content[i+1]
		switch key {
		case "smithy":
			if err := valNode.Decode(&model.Smithy); err != nil {
				return nil, fmt.Errorf("invalid smithy version: %w", err)
			}
		case "metadata":
			if err := valNode.Decode(&model.Metadata); err != nil {
				return nil, fmt.Errorf("invalid metadata block: %w", err)
			}
		case "shapes":
			if err := decodeShapes(model, valNode); err != nil {
				return nil, err
			}
		}
	}
	if model.Smithy == "" {
		return nil, fmt.Errorf("failed to decode Smithy AST: missing smithy version")
	}
	return model, nil
}

func decodeShapes(model *Model, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("shapes: expected object, got %v", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var rawID string
		if err := node.Content[i].Decode(&rawID); err != nil {
			return fmt.Errorf("shapes: invalid key: %w", err)
		}
		id, err := ParseShapeID(rawID)
		if err != nil {
			return fmt.Errorf("shapes: %w", err)
		}
		shape := &Shape{}
		if err := node.Content[i+1].Decode(shape); err != nil {
			return fmt.Errorf("shapes.%s: %w", rawID, err)
		}
		if !shape.Type.IsValid() {
			return fmt.Errorf("shapes.%s: unknown shape type %q", rawID, shape.Type)
		}
		if err := model.AddShape(id, shape); err != nil {
			return err
		}
	}
	return nil
}

// MarshalAST encodes the model back to its JSON AST form with shapes in
// insertion order, suitable for consumption by Smithy tooling.
func (m *Model) MarshalAST() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	version, err := json.Marshal(m.Smithy)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"smithy":`)
	buf.Write(version)
	if len(m.Metadata) > 0 {
		meta, merr := json.Marshal(m.Metadata)
		if merr != nil {
			return nil, merr
		}
		buf.WriteString(`,"metadata":`)
		buf.Write(meta)
	}
	buf.WriteString(`,"shapes":`)
	names := make([]string, 0, len(m.order))
	for _, id := range m.order {
		names = append(names, id.String())
	}
	shapes, err := marshalOrderedJSONObject(names, func(name string) (any, error) {
		id, perr := ParseShapeID(name)
		if perr != nil {
			return nil, perr
		}
		return m.shapes[id], nil
	})
	if err != nil {
		return nil, err
	}
	buf.Write(shapes)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalASTIndent is like MarshalAST but with indented output.
func (m *Model) MarshalASTIndent(prefix, indent string) ([]byte, error) {
	data, err := m.MarshalAST()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalOrderedJSONObject writes a JSON object with keys in the given order,
// pulling each value through the supplied accessor.
func marshalOrderedJSONObject(keys []string, value func(string) (any, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := value(key)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
