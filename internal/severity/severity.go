// Package severity provides severity level constants and utilities for
// issues reported by the converter package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during conversion.
type Severity int

const (
	// SeverityError indicates a structural problem that makes part of the
	// input untranslatable.
	SeverityError Severity = iota

	// SeverityWarning indicates lossy conversions or best-effort
	// transformations that should be reviewed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing
	// choices, such as collision-resolved component names.
	SeverityInfo

	// SeverityCritical indicates features that cannot be processed without
	// data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
