package smithy

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// ShapeType identifies the variant of a shape.
// The set is closed: conversion dispatches exhaustively on these values.
type ShapeType string

// Shape types as they appear in the Smithy JSON AST.
const (
	ShapeBlob       ShapeType = "blob"
	ShapeBoolean    ShapeType = "boolean"
	ShapeString     ShapeType = "string"
	ShapeByte       ShapeType = "byte"
	ShapeShort      ShapeType = "short"
	ShapeInteger    ShapeType = "integer"
	ShapeLong       ShapeType = "long"
	ShapeFloat      ShapeType = "float"
	ShapeDouble     ShapeType = "double"
	ShapeBigInteger ShapeType = "bigInteger"
	ShapeBigDecimal ShapeType = "bigDecimal"
	ShapeTimestamp  ShapeType = "timestamp"
	ShapeDocument   ShapeType = "document"
	ShapeEnum       ShapeType = "enum"
	ShapeIntEnum    ShapeType = "intEnum"
	ShapeList       ShapeType = "list"
	ShapeMap        ShapeType = "map"
	ShapeStructure  ShapeType = "structure"
	ShapeUnion      ShapeType = "union"
	ShapeService    ShapeType = "service"
	ShapeResource   ShapeType = "resource"
	ShapeOperation  ShapeType = "operation"
)

// IsValid returns true if the type is one of the defined shape types.
func (t ShapeType) IsValid() bool {
	switch t {
	case ShapeBlob, ShapeBoolean, ShapeString, ShapeByte, ShapeShort,
		ShapeInteger, ShapeLong, ShapeFloat, ShapeDouble, ShapeBigInteger,
		ShapeBigDecimal, ShapeTimestamp, ShapeDocument, ShapeEnum,
		ShapeIntEnum, ShapeList, ShapeMap, ShapeStructure, ShapeUnion,
		ShapeService, ShapeResource, ShapeOperation:
		return true
	}
	return false
}

// IsSimple returns true for the scalar shape types (no member targets).
func (t ShapeType) IsSimple() bool {
	switch t {
	case ShapeBlob, ShapeBoolean, ShapeString, ShapeByte, ShapeShort,
		ShapeInteger, ShapeLong, ShapeFloat, ShapeDouble, ShapeBigInteger,
		ShapeBigDecimal, ShapeTimestamp, ShapeDocument:
		return true
	}
	return false
}

// IsNumeric returns true for shape types whose values are numbers.
func (t ShapeType) IsNumeric() bool {
	switch t {
	case ShapeByte, ShapeShort, ShapeInteger, ShapeLong, ShapeFloat,
		ShapeDouble, ShapeBigInteger, ShapeBigDecimal, ShapeIntEnum:
		return true
	}
	return false
}

// ShapeRef is a bare reference to another shape, as used by service,
// resource, and operation shapes in the JSON AST.
type ShapeRef struct {
	Target string `yaml:"target" json:"target"`
}

// TargetID parses the reference target into a ShapeID.
func (r *ShapeRef) TargetID() (ShapeID, error) {
	if r == nil {
		return ShapeID{}, fmt.Errorf("nil shape reference")
	}
	return ParseShapeID(r.Target)
}

// MemberRef is a reference to a member's target shape together with the
// traits applied to the member itself (as opposed to the target shape).
type MemberRef struct {
	Target string         `yaml:"target" json:"target"`
	Traits map[string]any `yaml:"traits,omitempty" json:"traits,omitempty"`
}

// TargetID parses the member's target into a ShapeID.
func (m *MemberRef) TargetID() (ShapeID, error) {
	if m == nil {
		return ShapeID{}, fmt.Errorf("nil member reference")
	}
	return ParseShapeID(m.Target)
}

// HasTrait returns true when the member carries the named trait.
func (m *MemberRef) HasTrait(traitID string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Traits[traitID]
	return ok
}

// Trait returns the member's raw value for the named trait.
func (m *MemberRef) Trait(traitID string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.Traits[traitID]
	return v, ok
}

// Shape is one node of the shape graph. It is a closed tagged variant: Type
// selects which of the remaining fields are meaningful, mirroring the Smithy
// JSON AST layout. Shapes are immutable by convention once their Model is
// built; the converter treats them as read-only.
type Shape struct {
	Type ShapeType `yaml:"type" json:"type"`

	// List member target.
	Member *MemberRef `yaml:"member,omitempty" json:"member,omitempty"`

	// Map key and value targets.
	Key   *MemberRef `yaml:"key,omitempty" json:"key,omitempty"`
	Value *MemberRef `yaml:"value,omitempty" json:"value,omitempty"`

	// Structure, union, enum, and intEnum members, in declaration order.
	Members *MemberMap `yaml:"members,omitempty" json:"members,omitempty"`

	// Resource identifiers and lifecycle operations.
	Identifiers          map[string]*ShapeRef `yaml:"identifiers,omitempty" json:"identifiers,omitempty"`
	Create               *ShapeRef            `yaml:"create,omitempty" json:"create,omitempty"`
	Put                  *ShapeRef            `yaml:"put,omitempty" json:"put,omitempty"`
	Read                 *ShapeRef            `yaml:"read,omitempty" json:"read,omitempty"`
	Update               *ShapeRef            `yaml:"update,omitempty" json:"update,omitempty"`
	Delete               *ShapeRef            `yaml:"delete,omitempty" json:"delete,omitempty"`
	List                 *ShapeRef            `yaml:"list,omitempty" json:"list,omitempty"`
	CollectionOperations []*ShapeRef          `yaml:"collectionOperations,omitempty" json:"collectionOperations,omitempty"`

	// Service and resource operation/sub-resource bindings.
	Operations []*ShapeRef `yaml:"operations,omitempty" json:"operations,omitempty"`
	Resources  []*ShapeRef `yaml:"resources,omitempty" json:"resources,omitempty"`

	// Operation input, output, and error structures.
	Input  *ShapeRef   `yaml:"input,omitempty" json:"input,omitempty"`
	Output *ShapeRef   `yaml:"output,omitempty" json:"output,omitempty"`
	Errors []*ShapeRef `yaml:"errors,omitempty" json:"errors,omitempty"`

	// Service version.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Traits applied to the shape, keyed by trait ID
	// (e.g. "smithy.api#documentation"). Values are raw decoded payloads.
	Traits map[string]any `yaml:"traits,omitempty" json:"traits,omitempty"`
}

// HasTrait returns true when the shape carries the named trait.
func (s *Shape) HasTrait(traitID string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Traits[traitID]
	return ok
}

// Trait returns the raw value of the named trait.
func (s *Shape) Trait(traitID string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Traits[traitID]
	return v, ok
}

// LifecycleRefs returns the resource's lifecycle operation references in
// their fixed order (create, put, read, update, delete, list), skipping
// unset entries.
func (s *Shape) LifecycleRefs() []*ShapeRef {
	var refs []*ShapeRef
	for _, r := range []*ShapeRef{s.Create, s.Put, s.Read, s.Update, s.Delete, s.List} {
		if r != nil {
			refs = append(refs, r)
		}
	}
	return refs
}

// MemberMap is an insertion-ordered map of member name to MemberRef.
// Structure and union member order is semantically visible in both the Smithy
// IDL and the converted OpenAPI output, so order is preserved through decode,
// traversal, and encode.
type MemberMap struct {
	names   []string
	entries map[string]*MemberRef
}

// NewMemberMap returns an empty ordered member map.
func NewMemberMap() *MemberMap {
	return &MemberMap{entries: make(map[string]*MemberRef)}
}

// Set inserts or replaces the named member. Insertion order is preserved;
// replacing an existing member keeps its original position.
func (mm *MemberMap) Set(name string, ref *MemberRef) {
	if mm.entries == nil {
		mm.entries = make(map[string]*MemberRef)
	}
	if _, exists := mm.entries[name]; !exists {
		mm.names = append(mm.names, name)
	}
	mm.entries[name] = ref
}

// Get returns the named member, or nil if absent.
func (mm *MemberMap) Get(name string) *MemberRef {
	if mm == nil {
		return nil
	}
	return mm.entries[name]
}

// Names returns the member names in insertion order.
// The returned slice must not be mutated.
func (mm *MemberMap) Names() []string {
	if mm == nil {
		return nil
	}
	return mm.names
}

// Len returns the number of members.
func (mm *MemberMap) Len() int {
	if mm == nil {
		return 0
	}
	return len(mm.names)
}

// UnmarshalYAML decodes a mapping node, preserving key order.
func (mm *MemberMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("members: expected mapping, got %v", node.Kind)
	}
	mm.names = nil
	mm.entries = make(map[string]*MemberRef, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("members: invalid key: %w", err)
		}
		ref := &MemberRef{}
		if err := node.Content[i+1].Decode(ref); err != nil {
			return fmt.Errorf("members.%s: %w", name, err)
		}
		mm.Set(name, ref)
	}
	return nil
}

// MarshalYAML encodes the members as a mapping in insertion order.
func (mm *MemberMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range mm.names {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(mm.entries[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// MarshalJSON encodes the members as a JSON object in insertion order.
func (mm *MemberMap) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSONObject(mm.names, func(name string) (any, error) {
		return mm.entries[name], nil
	})
}
