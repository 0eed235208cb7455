package smithy

import (
	"fmt"
	"sort"
)

// Model is the arena of shapes keyed by ShapeID. It preserves shape insertion
// order so that repeated traversals over an unchanged model are
// deterministic. All cross-shape references go through ID lookup; the model
// holds no direct pointers between shapes.
type Model struct {
	// Smithy is the Smithy IDL version of the model, e.g. "2.0".
	Smithy string
	// Metadata holds the model-level metadata block, if any.
	Metadata map[string]any

	order  []ShapeID
	shapes map[ShapeID]*Shape
}

// NewModel returns an empty model with the current Smithy version.
func NewModel() *Model {
	return &Model{
		Smithy: "2.0",
		shapes: make(map[ShapeID]*Shape),
	}
}

// AddShape registers a shape under the given ID. Adding a second shape under
// an existing ID is an error; shapes are never replaced.
func (m *Model) AddShape(id ShapeID, shape *Shape) error {
	if !id.Defined() {
		return fmt.Errorf("cannot add shape with undefined ID %q", id.String())
	}
	if id.IsMember() {
		return fmt.Errorf("cannot add shape under member ID %q", id.String())
	}
	if shape == nil {
		return fmt.Errorf("cannot add nil shape %q", id.String())
	}
	if m.shapes == nil {
		m.shapes = make(map[ShapeID]*Shape)
	}
	if _, exists := m.shapes[id]; exists {
		return fmt.Errorf("shape %q already defined", id.String())
	}
	m.shapes[id] = shape
	m.order = append(m.order, id)
	return nil
}

// Shape returns the shape registered under id, or nil when absent.
// Member IDs resolve to their containing shape.
func (m *Model) Shape(id ShapeID) *Shape {
	if m == nil {
		return nil
	}
	return m.shapes[id.WithoutMember()]
}

// Contains returns true when the model defines a shape under id.
func (m *Model) Contains(id ShapeID) bool {
	return m.Shape(id) != nil
}

// Len returns the number of shapes in the model.
func (m *Model) Len() int {
	return len(m.order)
}

// ShapeIDs returns all shape IDs in insertion order.
// The returned slice must not be mutated.
func (m *Model) ShapeIDs() []ShapeID {
	return m.order
}

// ServiceIDs returns the IDs of all service shapes, in insertion order.
func (m *Model) ServiceIDs() []ShapeID {
	var ids []ShapeID
	for _, id := range m.order {
		if m.shapes[id].Type == ShapeService {
			ids = append(ids, id)
		}
	}
	return ids
}

// Namespaces returns the sorted set of namespaces used by the model's shapes.
func (m *Model) Namespaces() []string {
	seen := make(map[string]bool)
	var namespaces []string
	for _, id := range m.order {
		if !seen[id.Namespace] {
			seen[id.Namespace] = true
			namespaces = append(namespaces, id.Namespace)
		}
	}
	sort.Strings(namespaces)
	return namespaces
}
