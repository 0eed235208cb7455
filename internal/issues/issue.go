// Package issues provides a unified issue type for problems found while
// converting between Smithy models and OpenAPI documents.
package issues

import (
	"fmt"

	"github.com/erraggy/smithytools/internal/severity"
)

// Kind classifies an issue for programmatic handling.
type Kind string

// Issue kinds emitted by the converter.
const (
	KindUnsupportedShapeKind   Kind = "UnsupportedShapeKind"
	KindUnresolvableReference  Kind = "UnresolvableReference"
	KindNameCollision          Kind = "NameCollision"
	KindUnsupportedTrait       Kind = "UnsupportedTrait"
	KindInvalidTraitValue      Kind = "InvalidTraitValue"
	KindMissingHTTPBinding     Kind = "MissingHttpBinding"
	KindUnsupportedMapKey      Kind = "UnsupportedMapKey"
	KindUnsupportedSchema      Kind = "UnsupportedSchema"
	KindMissingSchema          Kind = "MissingSchema"
)

// Issue represents a single problem found during conversion.
type Issue struct {
	// Kind classifies the issue.
	Kind Kind
	// ShapeID is the Smithy shape the issue relates to (empty when the
	// issue originates on the OpenAPI side).
	ShapeID string
	// Path is the JSON path to the problematic field on the OpenAPI side
	// (e.g. "paths./pets.get.responses"). Empty for Smithy-side issues.
	Path string
	// Message is a human-readable description of the issue.
	Message string
	// Severity indicates the severity level of the issue.
	Severity severity.Severity
	// Context provides additional information about the issue (optional).
	Context string
	// Value is the problematic value (optional).
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s [%s] %s: %s", symbol, i.Kind, i.Location(), i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Location returns the issue's location: the Smithy shape ID when set,
// otherwise the OpenAPI document path, otherwise "document".
func (i Issue) Location() string {
	if i.ShapeID != "" {
		return i.ShapeID
	}
	if i.Path != "" {
		return i.Path
	}
	return "document"
}

// Collector accumulates issues during a single conversion run.
// It is append-only: recorded issues are never mutated or removed, and a
// collector is never shared between runs.
type Collector struct {
	issues []Issue
}

// Add records an issue.
func (c *Collector) Add(issue Issue) {
	c.issues = append(c.issues, issue)
}

// Issues returns all recorded issues in order of occurrence.
func (c *Collector) Issues() []Issue {
	return c.issues
}

// Count returns the number of issues recorded at the given severity.
func (c *Collector) Count(s severity.Severity) int {
	n := 0
	for _, issue := range c.issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Len returns the total number of recorded issues.
func (c *Collector) Len() int {
	return len(c.issues)
}
