package converter

import (
	"fmt"

	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

// primitiveSchemas is the fixed shape-type to type/format lookup table.
var primitiveSchemas = map[smithy.ShapeType]struct {
	typ    string
	format string
}{
	smithy.ShapeString:     {typ: "string"},
	smithy.ShapeBoolean:    {typ: "boolean"},
	smithy.ShapeByte:       {typ: "integer", format: "int32"},
	smithy.ShapeShort:      {typ: "integer", format: "int32"},
	smithy.ShapeInteger:    {typ: "integer", format: "int32"},
	smithy.ShapeLong:       {typ: "integer", format: "int64"},
	smithy.ShapeBigInteger: {typ: "integer"},
	smithy.ShapeFloat:      {typ: "number", format: "float"},
	smithy.ShapeDouble:     {typ: "number", format: "double"},
	smithy.ShapeBigDecimal: {typ: "number"},
	smithy.ShapeTimestamp:  {typ: "string", format: "date-time"},
	smithy.ShapeBlob:       {typ: "string", format: "binary"},
}

// primitiveSchema builds the schema for a simple shape type.
// The document type maps to a free-form object.
func primitiveSchema(t smithy.ShapeType) *openapi.Schema {
	if t == smithy.ShapeDocument {
		return &openapi.Schema{Type: "object", AdditionalProperties: &openapi.Schema{}}
	}
	entry, ok := primitiveSchemas[t]
	if !ok {
		return &openapi.Schema{}
	}
	return &openapi.Schema{Type: entry.typ, Format: entry.format}
}

// ensureComponent translates the shape into the components registry exactly
// once and returns its assigned name. When the shape is already being
// translated further up the call stack (a cycle), the name is returned
// immediately: the in-flight call will register the entry, so a $ref built
// from the name is guaranteed to resolve.
func (ctx *conversionContext) ensureComponent(id smithy.ShapeID) (string, error) {
	id = id.WithoutMember()
	name := ctx.resolveName(id)
	if ctx.completed[id] || ctx.inProgress[id] {
		return name, nil
	}
	shape := ctx.model.Shape(id)
	if shape == nil {
		return "", fmt.Errorf("shape %s referenced but not defined in model", id)
	}

	ctx.inProgress[id] = true
	schema, err := ctx.translateShapeBody(id, shape)
	delete(ctx.inProgress, id)
	if err != nil {
		return "", err
	}

	ctx.registry.Set(name, schema)
	ctx.completed[id] = true
	return name, nil
}

// translateTarget produces the schema for a member's target: an inline
// schema for prelude primitives and inlineable named shapes, or a $ref to
// the target's component entry. Member-level traits are applied on top.
func (ctx *conversionContext) translateTarget(member *smithy.MemberRef) (*openapi.Schema, error) {
	id, err := member.TargetID()
	if err != nil {
		return nil, err
	}

	var schema *openapi.Schema
	if preludeType, ok := smithy.PreludeShapeType(id); ok {
		if id == smithy.UnitShapeID {
			schema = &openapi.Schema{Type: "object"}
		} else {
			schema = primitiveSchema(preludeType)
		}
		ctx.applyTraits(id, member.Traits, preludeType, schema)
		return schema, nil
	}

	shape := ctx.model.Shape(id)
	if shape == nil {
		return nil, fmt.Errorf("shape %s referenced but not defined in model", id)
	}
	if ctx.inlineable(shape) && !ctx.inProgress[id] {
		schema, err = ctx.translateShapeBody(id, shape)
		if err != nil {
			return nil, err
		}
		ctx.applyTraits(id, member.Traits, shape.Type, schema)
		return schema, nil
	}

	name, err := ctx.ensureComponent(id)
	if err != nil {
		return nil, err
	}
	ref := &openapi.Schema{Ref: "#/components/schemas/" + name}
	return ctx.decorateRef(ref, id, member.Traits, shape.Type), nil
}

// decorateRef applies member-level traits alongside a $ref. OAS 3.1 allows
// sibling keywords next to $ref; OAS 3.0 ignores them, so the ref is wrapped
// in an allOf composition there.
func (ctx *conversionContext) decorateRef(ref *openapi.Schema, id smithy.ShapeID, traits map[string]any, targetType smithy.ShapeType) *openapi.Schema {
	decorated := &openapi.Schema{}
	ctx.applyTraits(id, traits, targetType, decorated)
	if isZeroSchema(decorated) {
		return ref
	}
	if ctx.cfg.version == openapi.Version31 {
		decorated.Ref = ref.Ref
		return decorated
	}
	decorated.AllOf = []*openapi.Schema{ref}
	return decorated
}

func isZeroSchema(s *openapi.Schema) bool {
	return s.Description == "" && s.Title == "" && s.Default == nil &&
		s.Maximum == nil && s.Minimum == nil && s.MaxLength == nil &&
		s.MinLength == nil && s.Pattern == "" && s.MaxItems == nil &&
		s.MinItems == nil && !s.UniqueItems && s.MaxProperties == nil &&
		s.MinProperties == nil && !s.Deprecated && len(s.Extra) == 0
}

// translateShapeBody converts one shape into one schema object, dispatching
// exhaustively on the shape variant. Shape-level traits are applied last so
// constraint traits always land on the fully-built structural schema.
func (ctx *conversionContext) translateShapeBody(id smithy.ShapeID, shape *smithy.Shape) (*openapi.Schema, error) {
	var schema *openapi.Schema
	var err error

	switch shape.Type {
	case smithy.ShapeBlob, smithy.ShapeBoolean, smithy.ShapeString,
		smithy.ShapeByte, smithy.ShapeShort, smithy.ShapeInteger,
		smithy.ShapeLong, smithy.ShapeFloat, smithy.ShapeDouble,
		smithy.ShapeBigInteger, smithy.ShapeBigDecimal,
		smithy.ShapeTimestamp, smithy.ShapeDocument:
		schema = primitiveSchema(shape.Type)

	case smithy.ShapeEnum:
		schema = ctx.translateEnum(shape, "string")

	case smithy.ShapeIntEnum:
		schema = ctx.translateEnum(shape, "integer")

	case smithy.ShapeList:
		schema, err = ctx.translateList(id, shape)

	case smithy.ShapeMap:
		schema, err = ctx.translateMap(id, shape)

	case smithy.ShapeStructure:
		schema, err = ctx.translateStructure(shape)

	case smithy.ShapeUnion:
		schema, err = ctx.translateUnion(shape)

	default:
		// Service, resource, and operation shapes have no schema form;
		// they are the assembler's concern. Reaching one here means the
		// model used it as a data member target.
		ctx.addShapeIssue(KindUnsupportedShapeKind, SeverityWarning, id,
			fmt.Sprintf("shape type %q has no schema translation", shape.Type), "")
		schema = &openapi.Schema{}
	}
	if err != nil {
		return nil, err
	}

	ctx.applyTraits(id, shape.Traits, shape.Type, schema)
	return schema, nil
}

// translateEnum converts enum and intEnum shapes. Each member's value comes
// from its enumValue trait, defaulting to the member name for string enums.
func (ctx *conversionContext) translateEnum(shape *smithy.Shape, baseType string) *openapi.Schema {
	schema := &openapi.Schema{Type: baseType}
	for _, name := range shape.Members.Names() {
		member := shape.Members.Get(name)
		if value, ok := member.Trait(smithy.TraitEnumValue); ok {
			schema.Enum = append(schema.Enum, value)
			continue
		}
		if baseType == "string" {
			schema.Enum = append(schema.Enum, name)
		}
	}
	return schema
}

func (ctx *conversionContext) translateList(id smithy.ShapeID, shape *smithy.Shape) (*openapi.Schema, error) {
	schema := &openapi.Schema{Type: "array"}
	if shape.Member == nil {
		ctx.addShapeIssue(KindUnsupportedShapeKind, SeverityWarning, id, "list shape has no member target", "")
		return schema, nil
	}
	items, err := ctx.translateTarget(shape.Member)
	if err != nil {
		return nil, err
	}
	schema.Items = items
	return schema, nil
}

// translateMap converts a map shape to an object schema with
// additionalProperties. Map keys must be string-compatible; key shapes that
// are not are reported and their constraints dropped, since JSON object keys
// are always strings.
func (ctx *conversionContext) translateMap(id smithy.ShapeID, shape *smithy.Shape) (*openapi.Schema, error) {
	schema := &openapi.Schema{Type: "object"}
	if shape.Key != nil {
		keyID, err := shape.Key.TargetID()
		if err != nil {
			return nil, err
		}
		keyType, ok := ctx.shapeTypeOf(keyID)
		if !ok {
			return nil, fmt.Errorf("shape %s referenced but not defined in model", keyID)
		}
		if keyType != smithy.ShapeString && keyType != smithy.ShapeEnum {
			ctx.addShapeIssue(KindUnsupportedMapKey, SeverityWarning, id,
				fmt.Sprintf("map key shape %s has type %q; object keys must be strings", keyID, keyType),
				"key constraints dropped")
		}
	}
	if shape.Value == nil {
		return schema, nil
	}
	value, err := ctx.translateTarget(shape.Value)
	if err != nil {
		return nil, err
	}
	schema.AdditionalProperties = value
	return schema, nil
}

func (ctx *conversionContext) translateStructure(shape *smithy.Shape) (*openapi.Schema, error) {
	schema := &openapi.Schema{Type: "object"}
	if shape.Members.Len() == 0 {
		return schema, nil
	}
	schema.Properties = openapi.NewSchemaMap()
	for _, name := range shape.Members.Names() {
		member := shape.Members.Get(name)
		property, err := ctx.translateTarget(member)
		if err != nil {
			return nil, err
		}
		schema.Properties.Set(name, property)
		if member.HasTrait(smithy.TraitRequired) {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema, nil
}

// translateUnion maps union variants to a oneOf composition of
// single-property object schemas, one per variant.
func (ctx *conversionContext) translateUnion(shape *smithy.Shape) (*openapi.Schema, error) {
	schema := &openapi.Schema{}
	for _, name := range shape.Members.Names() {
		member := shape.Members.Get(name)
		variant, err := ctx.translateTarget(member)
		if err != nil {
			return nil, err
		}
		properties := openapi.NewSchemaMap()
		properties.Set(name, variant)
		schema.OneOf = append(schema.OneOf, &openapi.Schema{
			Type:       "object",
			Properties: properties,
			Required:   []string{name},
		})
	}
	return schema, nil
}

// shapeTypeOf resolves a shape ID to its type, consulting the prelude for
// smithy.api shapes.
func (ctx *conversionContext) shapeTypeOf(id smithy.ShapeID) (smithy.ShapeType, bool) {
	if t, ok := smithy.PreludeShapeType(id); ok {
		return t, true
	}
	if shape := ctx.model.Shape(id); shape != nil {
		return shape.Type, true
	}
	return "", false
}
