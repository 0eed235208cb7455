package converter

import (
	"github.com/erraggy/smithytools/internal/issues"
	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

type conversionConfig struct {
	version             openapi.Version
	inlineSimpleSchemas bool
	namingStrategy      NamingStrategy
	extensionNamespace  string
	includeInfo         bool
}

// conversionContext is the single per-run mutable state: the name assignment
// tables, the cycle-detection sets, the component registry being built, and
// the issue collector. One context exists per conversion invocation and is
// discarded at run end. It is threaded explicitly through every component
// call; nothing here is global.
type conversionContext struct {
	model *smithy.Model
	cfg   conversionConfig

	// names memoizes resolved component names per shape ID; byName is the
	// reverse table used for collision detection.
	names  map[smithy.ShapeID]string
	byName map[string]smithy.ShapeID

	// inProgress holds the shape IDs currently being translated on the
	// call stack; membership means a recursive reference is a cycle and
	// must become a $ref rather than an inline schema.
	inProgress map[smithy.ShapeID]bool

	// completed memoizes finished component translations.
	completed map[smithy.ShapeID]bool

	// registry is the components registry in translation order.
	registry *openapi.SchemaMap

	collector *issues.Collector
}

func newConversionContext(model *smithy.Model, cfg conversionConfig) *conversionContext {
	return &conversionContext{
		model:      model,
		cfg:        cfg,
		names:      make(map[smithy.ShapeID]string),
		byName:     make(map[string]smithy.ShapeID),
		inProgress: make(map[smithy.ShapeID]bool),
		completed:  make(map[smithy.ShapeID]bool),
		registry:   openapi.NewSchemaMap(),
		collector:  &issues.Collector{},
	}
}

// inlineable reports whether a named shape is emitted at its point of use
// rather than as a component. Only shapes without outgoing shape references
// qualify, which is what keeps inlining cycle-free.
func (ctx *conversionContext) inlineable(shape *smithy.Shape) bool {
	if !ctx.cfg.inlineSimpleSchemas {
		return false
	}
	return shape.Type.IsSimple() || shape.Type == smithy.ShapeEnum || shape.Type == smithy.ShapeIntEnum
}

func (ctx *conversionContext) addIssue(issue issues.Issue) {
	ctx.collector.Add(issue)
}

func (ctx *conversionContext) addShapeIssue(kind issues.Kind, sev Severity, id smithy.ShapeID, message, context string) {
	ctx.collector.Add(issues.Issue{
		Kind:     kind,
		ShapeID:  id.String(),
		Message:  message,
		Severity: sev,
		Context:  context,
	})
}
