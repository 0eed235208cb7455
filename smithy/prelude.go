package smithy

// PreludeNamespace is the namespace of Smithy's built-in shapes.
const PreludeNamespace = "smithy.api"

// preludeTypes maps prelude simple shape names to their shape types. These
// shapes are defined by the Smithy specification itself and are resolvable
// even when a model's AST does not list them.
var preludeTypes = map[string]ShapeType{
	"Blob":       ShapeBlob,
	"Boolean":    ShapeBoolean,
	"String":     ShapeString,
	"Byte":       ShapeByte,
	"Short":      ShapeShort,
	"Integer":    ShapeInteger,
	"Long":       ShapeLong,
	"Float":      ShapeFloat,
	"Double":     ShapeDouble,
	"BigInteger": ShapeBigInteger,
	"BigDecimal": ShapeBigDecimal,
	"Timestamp":  ShapeTimestamp,
	"Document":   ShapeDocument,

	// Boxed aliases from Smithy 1.0 models.
	"PrimitiveBoolean": ShapeBoolean,
	"PrimitiveByte":    ShapeByte,
	"PrimitiveShort":   ShapeShort,
	"PrimitiveInteger": ShapeInteger,
	"PrimitiveLong":    ShapeLong,
	"PrimitiveFloat":   ShapeFloat,
	"PrimitiveDouble":  ShapeDouble,

	// Unit is the empty structure used for absent operation input/output.
	"Unit": ShapeStructure,
}

// PreludeShapeType returns the shape type of a smithy.api prelude shape.
// Returns false for IDs outside the prelude namespace or unknown names.
func PreludeShapeType(id ShapeID) (ShapeType, bool) {
	if id.Namespace != PreludeNamespace {
		return "", false
	}
	t, ok := preludeTypes[id.Name]
	return t, ok
}

// UnitShapeID is the prelude's empty structure, used as operation
// input/output when none is declared.
var UnitShapeID = ShapeID{Namespace: PreludeNamespace, Name: "Unit"}
