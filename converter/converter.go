package converter

import (
	"fmt"

	"github.com/erraggy/smithytools/internal/issues"
	"github.com/erraggy/smithytools/internal/severity"
	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates input constructs that could not be translated
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// IssueKind classifies a conversion issue
type IssueKind = issues.Kind

// Issue kinds reported by conversion runs.
const (
	KindUnsupportedShapeKind  = issues.KindUnsupportedShapeKind
	KindUnresolvableReference = issues.KindUnresolvableReference
	KindNameCollision         = issues.KindNameCollision
	KindUnsupportedTrait      = issues.KindUnsupportedTrait
	KindInvalidTraitValue     = issues.KindInvalidTraitValue
	KindMissingHTTPBinding    = issues.KindMissingHTTPBinding
	KindUnsupportedMapKey     = issues.KindUnsupportedMapKey
	KindUnsupportedSchema     = issues.KindUnsupportedSchema
	KindMissingSchema         = issues.KindMissingSchema
)

// NamingStrategy selects how component names are derived from shape IDs.
type NamingStrategy int

const (
	// NamingShortName names components after the shape's simple name,
	// disambiguating on collision ("Forecast", then "ForecastExampleGeo").
	NamingShortName NamingStrategy = iota
	// NamingFullyQualified always includes the namespace
	// ("ExampleWeatherForecast").
	NamingFullyQualified
)

// DefaultExtensionNamespace is the prefix for vendor extensions that carry
// trait data with no native OpenAPI equivalent.
const DefaultExtensionNamespace = "x-smithy"

// Converter converts Smithy models to OpenAPI documents and back.
// The zero value is usable; New applies the defaults explicitly.
type Converter struct {
	// Version selects the target OpenAPI dialect. Defaults to 3.0.
	Version openapi.Version
	// InlineSimpleSchemas inlines named simple shapes and enums at their
	// point of use instead of registering them as components.
	InlineSimpleSchemas bool
	// NamingStrategy controls component name derivation.
	NamingStrategy NamingStrategy
	// ExtensionNamespace is the prefix used for vendor-extension keys.
	// Defaults to DefaultExtensionNamespace.
	ExtensionNamespace string
	// IncludeInfo determines whether informational issues are reported.
	IncludeInfo bool
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		Version:            openapi.Version30,
		ExtensionNamespace: DefaultExtensionNamespace,
		IncludeInfo:        true,
	}
}

// ConversionResult contains the results of converting a Smithy model to an
// OpenAPI document.
type ConversionResult struct {
	// Document is the converted OpenAPI document.
	Document *openapi.Document
	// Service is the ID of the converted service shape.
	Service smithy.ShapeID
	// TargetVersion is the OpenAPI version written into the document.
	TargetVersion string
	// Issues contains all conversion issues in order of occurrence.
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Convert is a convenience function that converts a Smithy model to an
// OpenAPI document with default settings. It's equivalent to creating a
// Converter with New() and calling Convert().
//
// The service argument selects which service shape to convert. Pass the zero
// ShapeID to convert the model's first (and only) service.
//
// Example:
//
//	result, err := converter.Convert(model, smithy.ShapeID{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasWarnings() {
//	    // Inspect result.Issues
//	}
func Convert(model *smithy.Model, service smithy.ShapeID) (*ConversionResult, error) {
	return New().Convert(model, service)
}

// Convert converts a Smithy model to an OpenAPI document. The conversion
// never aborts on lossy constructs; it records issues and keeps going. The
// only hard failure is a structurally corrupt model: a shape ID that is
// referenced but absent from the model.
func (c *Converter) Convert(model *smithy.Model, service smithy.ShapeID) (*ConversionResult, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot convert nil model")
	}
	version := c.Version
	if !version.IsValid() {
		version = openapi.Version30
	}

	serviceID := service
	if !serviceID.Defined() {
		services := model.ServiceIDs()
		if len(services) == 0 {
			return nil, fmt.Errorf("model contains no service shapes")
		}
		serviceID = services[0]
	}
	svc := model.Shape(serviceID)
	if svc == nil {
		return nil, fmt.Errorf("service shape %s not found in model", serviceID)
	}
	if svc.Type != smithy.ShapeService {
		return nil, fmt.Errorf("shape %s is a %s, not a service", serviceID, svc.Type)
	}

	ctx := newConversionContext(model, conversionConfig{
		version:             version,
		inlineSimpleSchemas: c.InlineSimpleSchemas,
		namingStrategy:      c.NamingStrategy,
		extensionNamespace:  c.extensionNamespace(),
		includeInfo:         c.IncludeInfo,
	})

	// Translate every reachable data shape in walk order so the components
	// registry is populated deterministically before paths reference it.
	sequence, err := walkShapes(model, serviceID)
	if err != nil {
		return nil, err
	}
	for _, id := range sequence.dataShapes {
		shape := model.Shape(id)
		if shape == nil {
			return nil, fmt.Errorf("shape %s referenced but not defined in model", id)
		}
		if !ctx.inlineable(shape) {
			if _, cerr := ctx.ensureComponent(id); cerr != nil {
				return nil, cerr
			}
		}
	}

	doc, err := assembleDocument(ctx, serviceID, sequence.operations)
	if err != nil {
		return nil, err
	}

	return c.buildResult(ctx, serviceID, doc), nil
}

func (c *Converter) buildResult(ctx *conversionContext, serviceID smithy.ShapeID, doc *openapi.Document) *ConversionResult {
	result := &ConversionResult{
		Document:      doc,
		Service:       serviceID,
		TargetVersion: doc.OpenAPI,
	}
	for _, issue := range ctx.collector.Issues() {
		if issue.Severity == SeverityInfo && !c.IncludeInfo {
			continue
		}
		result.Issues = append(result.Issues, issue)
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
	result.Success = result.CriticalCount == 0
	return result
}

func (c *Converter) extensionNamespace() string {
	if c.ExtensionNamespace == "" {
		return DefaultExtensionNamespace
	}
	return c.ExtensionNamespace
}
