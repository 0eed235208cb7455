package openapi

// Schema represents a JSON Schema object as used by OAS 3.0 and 3.1
// documents. The field set covers what Smithy's shape kinds and constraint
// traits express; unmapped data travels in Extra as specification extensions.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation. Type is a string, or a []string for OAS 3.1
	// nullable unions like ["string", "null"].
	Type  any   `yaml:"type,omitempty" json:"type,omitempty"`
	Enum  []any `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const any   `yaml:"const,omitempty" json:"const,omitempty"` // OAS 3.1+

	// Numeric validation
	Maximum *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Minimum *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`

	// String validation
	MaxLength *int64 `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int64 `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int64  `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int64  `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           *SchemaMap `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *Schema    `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string   `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int64     `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int64     `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific fields
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Format, e.g. "int32", "int64", "date-time", "binary"
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// TypeString returns the schema's type when it is a plain string, handling
// the OAS 3.1 ["T", "null"] form by returning the non-null entry.
func (s *Schema) TypeString() string {
	switch t := s.Type.(type) {
	case string:
		return t
	case []string:
		for _, entry := range t {
			if entry != "null" {
				return entry
			}
		}
	case []any:
		for _, entry := range t {
			if str, ok := entry.(string); ok && str != "null" {
				return str
			}
		}
	}
	return ""
}

// IsNullable reports whether the schema admits null, in either the OAS 3.0
// (nullable: true) or OAS 3.1 (type includes "null") representation.
func (s *Schema) IsNullable() bool {
	if s.Nullable {
		return true
	}
	switch t := s.Type.(type) {
	case []string:
		for _, entry := range t {
			if entry == "null" {
				return true
			}
		}
	case []any:
		for _, entry := range t {
			if entry == "null" {
				return true
			}
		}
	}
	return false
}

// SetExtension records a specification extension on the schema.
func (s *Schema) SetExtension(key string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra[key] = value
}

// Discriminator supports polymorphism for oneOf/anyOf compositions
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}
