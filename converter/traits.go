package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

// traitRuleCategory classifies how a trait maps onto OpenAPI output.
type traitRuleCategory int

const (
	// categoryDirect maps the trait value onto a native schema field.
	categoryDirect traitRuleCategory = iota
	// categoryConstraint maps the trait onto validation keywords; the set
	// of keywords depends on the target shape type.
	categoryConstraint
	// categoryStructural marks traits consumed elsewhere (HTTP bindings by
	// the assembler, enumValue by enum translation); they produce no
	// schema fields and no diagnostics here.
	categoryStructural
	// categoryExtension emits the raw trait value under a vendor-extension
	// key: the trait is understood but has no OpenAPI equivalent.
	categoryExtension
)

// traitApplication carries everything a rule needs to apply one trait.
type traitApplication struct {
	ctx        *conversionContext
	shapeID    smithy.ShapeID
	traitID    string
	value      any
	targetType smithy.ShapeType
	schema     *openapi.Schema
}

// traitRule describes the translation of one trait identifier.
type traitRule struct {
	category traitRuleCategory
	// apply maps the trait onto the schema. Nil for structural and
	// extension categories. Returning false reports InvalidTraitValue.
	apply func(app *traitApplication) bool
}

// traitRules is the static trait-identifier to translation-rule table.
// Adding support for a new trait means adding a row here; the dispatch in
// applyTraits never changes.
var traitRules = map[string]traitRule{
	smithy.TraitDocumentation: {category: categoryDirect, apply: applyDocumentation},
	smithy.TraitTitle:         {category: categoryDirect, apply: applyTitle},
	smithy.TraitDeprecated:    {category: categoryDirect, apply: applyDeprecated},
	smithy.TraitExternalDocs:  {category: categoryDirect, apply: applyExternalDocs},
	smithy.TraitDefault:       {category: categoryDirect, apply: applyDefault},

	smithy.TraitLength:      {category: categoryConstraint, apply: applyLength},
	smithy.TraitRange:       {category: categoryConstraint, apply: applyRange},
	smithy.TraitPattern:     {category: categoryConstraint, apply: applyPattern},
	smithy.TraitUniqueItems: {category: categoryConstraint, apply: applyUniqueItems},

	smithy.TraitRequired:     {category: categoryStructural},
	smithy.TraitEnumValue:    {category: categoryStructural},
	smithy.TraitError:        {category: categoryStructural},
	smithy.TraitHTTP:         {category: categoryStructural},
	smithy.TraitHTTPError:    {category: categoryStructural},
	smithy.TraitHTTPLabel:    {category: categoryStructural},
	smithy.TraitHTTPQuery:    {category: categoryStructural},
	smithy.TraitHTTPHeader:   {category: categoryStructural},
	smithy.TraitHTTPPayload:  {category: categoryStructural},
	smithy.TraitReadonly:     {category: categoryStructural},
	smithy.TraitIdempotent:   {category: categoryStructural},

	smithy.TraitHTTPBasicAuth:  {category: categoryStructural},
	smithy.TraitHTTPBearerAuth: {category: categoryStructural},
	smithy.TraitHTTPAPIKeyAuth: {category: categoryStructural},

	smithy.TraitSensitive: {category: categoryExtension},
	smithy.TraitTags:      {category: categoryExtension},
}

// applyTraits translates every trait in the map onto the schema via the rule
// table. Unknown trait identifiers are recorded as UnsupportedTrait and
// skipped; trait values that fail their rule's shape check are recorded as
// InvalidTraitValue and skipped. Neither is ever fatal.
//
// Iteration visits trait IDs in sorted order so diagnostics are
// deterministic; the fields written are order-independent.
func (ctx *conversionContext) applyTraits(shapeID smithy.ShapeID, traits map[string]any, targetType smithy.ShapeType, schema *openapi.Schema) {
	for _, traitID := range sortedTraitIDs(traits) {
		value := traits[traitID]
		rule, known := traitRules[traitID]
		if !known {
			ctx.addShapeIssue(KindUnsupportedTrait, SeverityWarning, shapeID,
				fmt.Sprintf("no mapping rule for trait %s", traitID), "trait data dropped")
			continue
		}
		switch rule.category {
		case categoryStructural:
			continue
		case categoryExtension:
			schema.SetExtension(ctx.extensionKey(traitID), value)
			continue
		}
		app := &traitApplication{
			ctx:        ctx,
			shapeID:    shapeID,
			traitID:    traitID,
			value:      value,
			targetType: targetType,
			schema:     schema,
		}
		if !rule.apply(app) {
			ctx.addShapeIssue(KindInvalidTraitValue, SeverityWarning, shapeID,
				fmt.Sprintf("trait %s does not apply to %s shapes or its value is malformed", traitID, targetType),
				"trait skipped")
		}
	}
}

// extensionKey derives the vendor-extension key for a trait identifier:
// "smithy.api#sensitive" becomes "<namespace>-sensitive".
func (ctx *conversionContext) extensionKey(traitID string) string {
	name := traitID
	if hash := strings.Index(traitID, "#"); hash >= 0 {
		name = traitID[hash+1:]
	}
	return ctx.cfg.extensionNamespace + "-" + name
}

func sortedTraitIDs(traits map[string]any) []string {
	if len(traits) == 0 {
		return nil
	}
	ids := make([]string, 0, len(traits))
	for id := range traits {
		ids = append(ids, id)
	}
	// Decoded trait maps have no stable iteration order; sorted order is
	// the deterministic substitute.
	sort.Strings(ids)
	return ids
}

func applyDocumentation(app *traitApplication) bool {
	text, ok := app.value.(string)
	if !ok {
		return false
	}
	app.schema.Description = text
	return true
}

func applyTitle(app *traitApplication) bool {
	text, ok := app.value.(string)
	if !ok {
		return false
	}
	app.schema.Title = text
	return true
}

func applyDeprecated(app *traitApplication) bool {
	app.schema.Deprecated = true
	dep := smithy.DeprecatedTraitOf(app.value)
	if dep.Message != "" || dep.Since != "" {
		app.schema.SetExtension(app.ctx.extensionKey(app.traitID), app.value)
	}
	return true
}

func applyExternalDocs(app *traitApplication) bool {
	docs, ok := smithy.ExternalDocsTraitOf(app.value)
	if !ok {
		return false
	}
	app.schema.ExternalDocs = externalDocsFromTrait(docs)
	return true
}

// externalDocsFromTrait picks the preferred entry from the trait's
// name-to-URL map. "Homepage" wins when present, matching Smithy's own
// OpenAPI conversion; otherwise the lexically first name is used so the
// choice is deterministic.
func externalDocsFromTrait(docs smithy.ExternalDocsTrait) *openapi.ExternalDocs {
	if url, ok := docs["Homepage"]; ok {
		return &openapi.ExternalDocs{Description: "Homepage", URL: url}
	}
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return &openapi.ExternalDocs{Description: names[0], URL: docs[names[0]]}
}

// applyDefault emits the default value verbatim. When a range trait is also
// present the bounds are emitted independently and never clamp the default;
// the two traits affect disjoint keywords.
func applyDefault(app *traitApplication) bool {
	app.schema.Default = app.value
	return true
}

func applyLength(app *traitApplication) bool {
	length, ok := smithy.LengthTraitOf(app.value)
	if !ok {
		return false
	}
	switch app.targetType {
	case smithy.ShapeString, smithy.ShapeBlob:
		app.schema.MinLength = length.Min
		app.schema.MaxLength = length.Max
	case smithy.ShapeList:
		app.schema.MinItems = length.Min
		app.schema.MaxItems = length.Max
	case smithy.ShapeMap:
		app.schema.MinProperties = length.Min
		app.schema.MaxProperties = length.Max
	default:
		return false
	}
	return true
}

func applyRange(app *traitApplication) bool {
	if !app.targetType.IsNumeric() {
		return false
	}
	rng, ok := smithy.RangeTraitOf(app.value)
	if !ok {
		return false
	}
	app.schema.Minimum = rng.Min
	app.schema.Maximum = rng.Max
	return true
}

func applyPattern(app *traitApplication) bool {
	pattern, ok := app.value.(string)
	if !ok || app.targetType != smithy.ShapeString {
		return false
	}
	app.schema.Pattern = pattern
	return true
}

func applyUniqueItems(app *traitApplication) bool {
	if app.targetType != smithy.ShapeList {
		return false
	}
	app.schema.UniqueItems = true
	return true
}
