package openapi

import "strings"

// Version identifies the OpenAPI dialect targeted by a conversion.
type Version int

const (
	// VersionUnknown indicates an unrecognized version string.
	VersionUnknown Version = iota
	// Version30 targets OAS 3.0.x: nullable fields, single-string types.
	Version30
	// Version31 targets OAS 3.1.x: JSON Schema 2020-12, type arrays.
	Version31
)

// defaultPatchVersions maps each dialect to the concrete version emitted in
// the document's openapi field.
var defaultPatchVersions = map[Version]string{
	Version30: "3.0.3",
	Version31: "3.1.0",
}

// ParseVersion parses a version selector like "3.0", "3.0.3", or "3.1".
func ParseVersion(s string) (Version, bool) {
	switch {
	case s == "3.0" || strings.HasPrefix(s, "3.0."):
		return Version30, true
	case s == "3.1" || strings.HasPrefix(s, "3.1."):
		return Version31, true
	}
	return VersionUnknown, false
}

// String returns the dialect selector ("3.0" or "3.1").
func (v Version) String() string {
	switch v {
	case Version30:
		return "3.0"
	case Version31:
		return "3.1"
	default:
		return "unknown"
	}
}

// DocumentVersion returns the full version string written into a document's
// openapi field.
func (v Version) DocumentVersion() string {
	if s, ok := defaultPatchVersions[v]; ok {
		return s
	}
	return ""
}

// IsValid returns true for a recognized dialect.
func (v Version) IsValid() bool {
	return v == Version30 || v == Version31
}
