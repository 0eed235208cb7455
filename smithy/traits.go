package smithy

// Trait IDs from the smithy.api prelude that the converter understands.
// Trait values are decoded as raw any payloads; the typed views below coerce
// them into usable forms.
const (
	TraitDocumentation = "smithy.api#documentation"
	TraitTitle         = "smithy.api#title"
	TraitExternalDocs  = "smithy.api#externalDocumentation"
	TraitTags          = "smithy.api#tags"
	TraitDeprecated    = "smithy.api#deprecated"
	TraitSensitive     = "smithy.api#sensitive"

	TraitLength      = "smithy.api#length"
	TraitRange       = "smithy.api#range"
	TraitPattern     = "smithy.api#pattern"
	TraitUniqueItems = "smithy.api#uniqueItems"
	TraitRequired    = "smithy.api#required"
	TraitDefault     = "smithy.api#default"
	TraitEnumValue   = "smithy.api#enumValue"

	TraitError     = "smithy.api#error"
	TraitHTTP      = "smithy.api#http"
	TraitHTTPError = "smithy.api#httpError"

	TraitHTTPLabel   = "smithy.api#httpLabel"
	TraitHTTPQuery   = "smithy.api#httpQuery"
	TraitHTTPHeader  = "smithy.api#httpHeader"
	TraitHTTPPayload = "smithy.api#httpPayload"

	TraitReadonly   = "smithy.api#readonly"
	TraitIdempotent = "smithy.api#idempotent"

	TraitHTTPBasicAuth  = "smithy.api#httpBasicAuth"
	TraitHTTPBearerAuth = "smithy.api#httpBearerAuth"
	TraitHTTPAPIKeyAuth = "smithy.api#httpApiKeyAuth"
)

// HTTPTrait is the decoded smithy.api#http trait value.
type HTTPTrait struct {
	Method string
	URI    string
	Code   int
}

// HTTPTraitOf decodes the smithy.api#http trait from a raw trait value.
// Returns false when the value is not an object or lacks method/uri.
func HTTPTraitOf(v any) (*HTTPTrait, bool) {
	m := asObject(v)
	if m == nil {
		return nil, false
	}
	t := &HTTPTrait{
		Method: asString(m["method"]),
		URI:    asString(m["uri"]),
		Code:   asInt(m["code"]),
	}
	if t.Method == "" || t.URI == "" {
		return nil, false
	}
	if t.Code == 0 {
		t.Code = 200
	}
	return t, true
}

// LengthTrait is the decoded smithy.api#length trait value.
type LengthTrait struct {
	Min *int64
	Max *int64
}

// LengthTraitOf decodes the smithy.api#length trait from a raw trait value.
func LengthTraitOf(v any) (*LengthTrait, bool) {
	m := asObject(v)
	if m == nil {
		return nil, false
	}
	t := &LengthTrait{}
	if n, ok := asInt64Value(m["min"]); ok {
		t.Min = &n
	}
	if n, ok := asInt64Value(m["max"]); ok {
		t.Max = &n
	}
	if t.Min == nil && t.Max == nil {
		return nil, false
	}
	return t, true
}

// RangeTrait is the decoded smithy.api#range trait value.
type RangeTrait struct {
	Min *float64
	Max *float64
}

// RangeTraitOf decodes the smithy.api#range trait from a raw trait value.
func RangeTraitOf(v any) (*RangeTrait, bool) {
	m := asObject(v)
	if m == nil {
		return nil, false
	}
	t := &RangeTrait{}
	if n, ok := asFloatValue(m["min"]); ok {
		t.Min = &n
	}
	if n, ok := asFloatValue(m["max"]); ok {
		t.Max = &n
	}
	if t.Min == nil && t.Max == nil {
		return nil, false
	}
	return t, true
}

// DeprecatedTrait is the decoded smithy.api#deprecated trait value.
type DeprecatedTrait struct {
	Message string
	Since   string
}

// DeprecatedTraitOf decodes the smithy.api#deprecated trait. The trait value
// may be an empty object, so this never fails for object values.
func DeprecatedTraitOf(v any) *DeprecatedTrait {
	m := asObject(v)
	return &DeprecatedTrait{
		Message: asString(m["message"]),
		Since:   asString(m["since"]),
	}
}

// ExternalDocsTrait is the decoded smithy.api#externalDocumentation trait
// value: display name to URL, e.g. {"API Reference": "https://..."}.
type ExternalDocsTrait map[string]string

// ExternalDocsTraitOf decodes the smithy.api#externalDocumentation trait.
func ExternalDocsTraitOf(v any) (ExternalDocsTrait, bool) {
	m := asObject(v)
	if len(m) == 0 {
		return nil, false
	}
	t := make(ExternalDocsTrait, len(m))
	for k, val := range m {
		if s := asString(val); s != "" {
			t[k] = s
		}
	}
	if len(t) == 0 {
		return nil, false
	}
	return t, true
}

// APIKeyAuthTrait is the decoded smithy.api#httpApiKeyAuth trait value.
type APIKeyAuthTrait struct {
	Name   string
	In     string
	Scheme string
}

// APIKeyAuthTraitOf decodes the smithy.api#httpApiKeyAuth trait.
func APIKeyAuthTraitOf(v any) (*APIKeyAuthTrait, bool) {
	m := asObject(v)
	if m == nil {
		return nil, false
	}
	t := &APIKeyAuthTrait{
		Name:   asString(m["name"]),
		In:     asString(m["in"]),
		Scheme: asString(m["scheme"]),
	}
	if t.Name == "" || t.In == "" {
		return nil, false
	}
	return t, true
}

// TagsTraitOf decodes the smithy.api#tags trait into its tag list.
func TagsTraitOf(v any) []string {
	return asStrings(v)
}

// Raw trait value coercion helpers. Trait payloads arrive as any-typed trees
// from YAML/JSON decoding, so numeric values may be any of int, int64,
// uint64, or float64 depending on the decoder and magnitude.

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, sok := item.(string); sok {
			out = append(out, s)
		}
	}
	return out
}

func asInt(v any) int {
	n, _ := asInt64Value(v)
	return int(n)
}

func asInt64Value(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func asFloatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
