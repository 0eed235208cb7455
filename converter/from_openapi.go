package converter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/smithytools/internal/issues"
	"github.com/erraggy/smithytools/internal/naming"
	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

const componentRefPrefix = "#/components/schemas/"

// ModelResult contains the results of converting an OpenAPI document to a
// Smithy model.
type ModelResult struct {
	// Model is the converted Smithy model.
	Model *smithy.Model
	// Service is the ID of the synthesized service shape.
	Service smithy.ShapeID
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
func (r *ModelResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ModelResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// ConvertDocument is a convenience function that converts an OpenAPI
// document to a Smithy model with default settings, placing all synthesized
// shapes in the given namespace.
func ConvertDocument(doc *openapi.Document, namespace string) (*ModelResult, error) {
	return New().ConvertDocument(doc, namespace)
}

// ConvertDocument converts an OpenAPI document to a Smithy model. Component
// schemas become named data shapes, path operations become operation shapes
// with smithy.api#http traits, and a service shape ties them together.
// Lossy constructs are recorded as issues; only a nil document or an invalid
// namespace fail hard.
func (c *Converter) ConvertDocument(doc *openapi.Document, namespace string) (*ModelResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("cannot convert nil document")
	}
	if !validNamespace(namespace) {
		return nil, fmt.Errorf("invalid target namespace %q", namespace)
	}

	im := &modelImport{
		doc:       doc,
		namespace: namespace,
		extension: c.extensionNamespace(),
		model:     smithy.NewModel(),
		byName:    make(map[string]smithy.ShapeID),
		taken:     make(map[string]bool),
		collector: &issues.Collector{},
	}

	im.importComponents()
	operations := im.importPaths()
	serviceID := im.importService(operations)

	result := &ModelResult{Model: im.model, Service: serviceID}
	for _, issue := range im.collector.Issues() {
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
	return result, nil
}

// modelImport is the per-run state of an OpenAPI to Smithy conversion:
// the document being read, the model being built, and the name tables that
// keep synthesized shape names unique.
type modelImport struct {
	doc       *openapi.Document
	namespace string
	extension string
	model     *smithy.Model

	// byName maps component names to the shape IDs minted for them, so
	// that $ref targets resolve.
	byName map[string]smithy.ShapeID
	// taken tracks every minted shape name, components and synthesized
	// inline shapes alike.
	taken map[string]bool

	collector *issues.Collector
}

func (im *modelImport) addIssue(kind issues.Kind, sev Severity, path, message, context string) {
	im.collector.Add(issues.Issue{
		Kind:     kind,
		Path:     path,
		Message:  message,
		Severity: sev,
		Context:  context,
	})
}

// mintID reserves a unique shape name in the target namespace, appending a
// numeric suffix when the preferred name is already taken.
func (im *modelImport) mintID(preferred string) smithy.ShapeID {
	name := naming.SanitizeComponentName(preferred)
	if name == "" {
		name = "Shape"
	}
	candidate := name
	for n := 2; im.taken[candidate]; n++ {
		candidate = name + strconv.Itoa(n)
	}
	im.taken[candidate] = true
	return smithy.ShapeID{Namespace: im.namespace, Name: candidate}
}

// importComponents mints a shape ID for every component schema up front so
// $refs between components resolve regardless of declaration order, then
// imports each schema in document order.
func (im *modelImport) importComponents() {
	if im.doc.Components == nil || im.doc.Components.Schemas == nil {
		return
	}
	schemas := im.doc.Components.Schemas
	for _, name := range schemas.Names() {
		im.byName[name] = im.mintID(name)
	}
	for _, name := range schemas.Names() {
		path := "components.schemas." + name
		shape := im.importSchema(im.byName[name], schemas.Get(name), path)
		if err := im.model.AddShape(im.byName[name], shape); err != nil {
			im.addIssue(KindUnsupportedSchema, SeverityCritical, path, err.Error(), "")
		}
	}
}

// importSchema translates one schema into a full shape. It is used for
// component schemas and for synthesized inline shapes alike.
func (im *modelImport) importSchema(id smithy.ShapeID, schema *openapi.Schema, path string) *smithy.Shape {
	shape := im.schemaShape(id, schema, path)
	traits := im.traitsFromSchema(schema, shape.Type, path)
	if len(traits) > 0 {
		if shape.Traits == nil {
			shape.Traits = traits
		} else {
			for k, v := range traits {
				shape.Traits[k] = v
			}
		}
	}
	return shape
}

func (im *modelImport) schemaShape(id smithy.ShapeID, schema *openapi.Schema, path string) *smithy.Shape {
	switch {
	case schema == nil:
		im.addIssue(KindMissingSchema, SeverityWarning, path, "schema is absent", "imported as smithy.api#Document")
		return &smithy.Shape{Type: smithy.ShapeDocument}

	case schema.Ref != "":
		// A top-level component that is nothing but a $ref has no Smithy
		// equivalent; Smithy has no shape aliases.
		im.addIssue(KindUnsupportedSchema, SeverityWarning, path,
			"component schema is a bare $ref", "imported as a structure with a single value member")
		shape := &smithy.Shape{Type: smithy.ShapeStructure, Members: smithy.NewMemberMap()}
		shape.Members.Set("value", &smithy.MemberRef{Target: im.refTarget(schema.Ref, path)})
		return shape

	case len(schema.OneOf) > 0:
		return im.importUnion(id, schema, path)

	case len(schema.Enum) > 0:
		return im.importEnum(schema, path)

	case schema.TypeString() == "array" || schema.Items != nil:
		member := im.memberFor(id, "Member", schema.Items, path+".items")
		return &smithy.Shape{Type: smithy.ShapeList, Member: member}

	case schema.TypeString() == "object" || schema.Properties != nil || schema.AdditionalProperties != nil:
		if schema.Properties != nil && schema.Properties.Len() > 0 {
			return im.importStructure(id, schema, path)
		}
		if schema.AdditionalProperties != nil {
			value := im.memberFor(id, "Value", schema.AdditionalProperties, path+".additionalProperties")
			return &smithy.Shape{
				Type:  smithy.ShapeMap,
				Key:   &smithy.MemberRef{Target: preludeTarget("String")},
				Value: value,
			}
		}
		return &smithy.Shape{Type: smithy.ShapeDocument}

	default:
		return &smithy.Shape{Type: primitiveShapeType(schema)}
	}
}

func (im *modelImport) importStructure(id smithy.ShapeID, schema *openapi.Schema, path string) *smithy.Shape {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}
	shape := &smithy.Shape{Type: smithy.ShapeStructure, Members: smithy.NewMemberMap()}
	for _, name := range schema.Properties.Names() {
		member := im.memberFor(id, naming.ToPascalCase(name), schema.Properties.Get(name), path+".properties."+name)
		if required[name] {
			if member.Traits == nil {
				member.Traits = make(map[string]any)
			}
			member.Traits[smithy.TraitRequired] = map[string]any{}
		}
		shape.Members.Set(name, member)
	}
	return shape
}

// importUnion turns a oneOf composition into a union shape. Alternatives
// written as single-property objects keep their property name as the member
// name; anything else gets a positional name.
func (im *modelImport) importUnion(id smithy.ShapeID, schema *openapi.Schema, path string) *smithy.Shape {
	shape := &smithy.Shape{Type: smithy.ShapeUnion, Members: smithy.NewMemberMap()}
	for i, alt := range schema.OneOf {
		altPath := fmt.Sprintf("%s.oneOf[%d]", path, i)
		if alt != nil && alt.Ref == "" && alt.Properties != nil && alt.Properties.Len() == 1 {
			name := alt.Properties.Names()[0]
			member := im.memberFor(id, naming.ToPascalCase(name), alt.Properties.Get(name), altPath)
			shape.Members.Set(name, member)
			continue
		}
		name := "value" + strconv.Itoa(i+1)
		im.addIssue(KindUnsupportedSchema, SeverityInfo, altPath,
			"oneOf alternative is not a single-property object", fmt.Sprintf("imported as union member %q", name))
		member := im.memberFor(id, naming.ToPascalCase(name), alt, altPath)
		shape.Members.Set(name, member)
	}
	return shape
}

// importEnum turns an enum schema into an enum or intEnum shape. Member
// names are derived from the values; the original value is preserved in the
// enumValue trait.
func (im *modelImport) importEnum(schema *openapi.Schema, path string) *smithy.Shape {
	shapeType := smithy.ShapeEnum
	if schema.TypeString() == "integer" {
		shapeType = smithy.ShapeIntEnum
	}
	shape := &smithy.Shape{Type: shapeType, Members: smithy.NewMemberMap()}
	for i, value := range schema.Enum {
		var name string
		switch v := value.(type) {
		case string:
			name = enumMemberName(v)
		case int, int64, uint64, float64:
			name = "VALUE_" + strconv.Itoa(asIntValue(v))
		default:
			im.addIssue(KindUnsupportedSchema, SeverityWarning, path,
				fmt.Sprintf("enum value %v has unsupported type %T", value, value), "value dropped")
			continue
		}
		if name == "" || shape.Members.Get(name) != nil {
			name = "VALUE_" + strconv.Itoa(i)
		}
		shape.Members.Set(name, &smithy.MemberRef{
			Target: preludeTarget("Unit"),
			Traits: map[string]any{smithy.TraitEnumValue: value},
		})
	}
	return shape
}

// memberFor resolves a member-position schema to a target. Primitives and
// $refs resolve directly; inline aggregates are lifted into synthesized
// named shapes.
func (im *modelImport) memberFor(parent smithy.ShapeID, suffix string, schema *openapi.Schema, path string) *smithy.MemberRef {
	if schema == nil {
		im.addIssue(KindMissingSchema, SeverityWarning, path, "schema is absent", "member targets smithy.api#Document")
		return &smithy.MemberRef{Target: preludeTarget("Document")}
	}
	if schema.Ref != "" {
		return &smithy.MemberRef{Target: im.refTarget(schema.Ref, path)}
	}
	if isPrimitiveSchema(schema) {
		member := &smithy.MemberRef{Target: preludeTarget(preludeNameFor(schema))}
		if traits := im.traitsFromSchema(schema, primitiveShapeType(schema), path); len(traits) > 0 {
			member.Traits = traits
		}
		return member
	}
	inlineID := im.mintID(parent.Name + suffix)
	shape := im.importSchema(inlineID, schema, path)
	if err := im.model.AddShape(inlineID, shape); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, path, err.Error(), "")
		return &smithy.MemberRef{Target: preludeTarget("Document")}
	}
	return &smithy.MemberRef{Target: inlineID.String()}
}

// refTarget resolves a $ref string to the shape ID minted for the referenced
// component. Unresolvable references degrade to smithy.api#Document.
func (im *modelImport) refTarget(ref, path string) string {
	name, ok := strings.CutPrefix(ref, componentRefPrefix)
	if ok {
		if id, found := im.byName[name]; found {
			return id.String()
		}
	}
	im.addIssue(KindMissingSchema, SeverityError, path,
		fmt.Sprintf("reference %q does not resolve to a component schema", ref),
		"member targets smithy.api#Document")
	return preludeTarget("Document")
}

// traitsFromSchema recovers Smithy traits from schema metadata, constraint
// keywords, and vendor extensions previously written by the forward
// direction.
func (im *modelImport) traitsFromSchema(schema *openapi.Schema, shapeType smithy.ShapeType, path string) map[string]any {
	if schema == nil {
		return nil
	}
	traits := make(map[string]any)

	if schema.Description != "" {
		traits[smithy.TraitDocumentation] = schema.Description
	}
	if schema.Title != "" {
		traits[smithy.TraitTitle] = schema.Title
	}
	if schema.Deprecated {
		traits[smithy.TraitDeprecated] = map[string]any{}
	}
	if schema.Default != nil {
		traits[smithy.TraitDefault] = schema.Default
	}
	if schema.Pattern != "" {
		traits[smithy.TraitPattern] = schema.Pattern
	}
	if schema.UniqueItems {
		traits[smithy.TraitUniqueItems] = map[string]any{}
	}

	if length := lengthFromSchema(schema); length != nil {
		traits[smithy.TraitLength] = length
	}
	if schema.Minimum != nil || schema.Maximum != nil {
		if !shapeType.IsNumeric() {
			im.addIssue(KindInvalidTraitValue, SeverityWarning, path,
				"minimum/maximum on a non-numeric schema", "bounds dropped")
		} else {
			bounds := make(map[string]any, 2)
			if schema.Minimum != nil {
				bounds["min"] = *schema.Minimum
			}
			if schema.Maximum != nil {
				bounds["max"] = *schema.Maximum
			}
			traits[smithy.TraitRange] = bounds
		}
	}
	if schema.ExternalDocs != nil && schema.ExternalDocs.URL != "" {
		name := schema.ExternalDocs.Description
		if name == "" {
			name = "Homepage"
		}
		traits[smithy.TraitExternalDocs] = map[string]any{name: schema.ExternalDocs.URL}
	}

	prefix := im.extension + "-"
	for key, value := range schema.Extra {
		if suffix, ok := strings.CutPrefix(key, prefix); ok && suffix != "" {
			traits[smithy.PreludeNamespace+"#"+suffix] = value
		}
	}

	if len(traits) == 0 {
		return nil
	}
	return traits
}

// lengthFromSchema folds the per-type size keywords back into one length
// trait value.
func lengthFromSchema(schema *openapi.Schema) map[string]any {
	length := make(map[string]any, 2)
	setBound := func(key string, v *int64) {
		if v != nil {
			length[key] = *v
		}
	}
	setBound("min", schema.MinLength)
	setBound("max", schema.MaxLength)
	setBound("min", schema.MinItems)
	setBound("max", schema.MaxItems)
	setBound("min", schema.MinProperties)
	setBound("max", schema.MaxProperties)
	if len(length) == 0 {
		return nil
	}
	return length
}

// importPaths walks the path map in sorted order and each path item in fixed
// method order, producing operation shapes.
func (im *modelImport) importPaths() []smithy.ShapeID {
	templates := make([]string, 0, len(im.doc.Paths))
	for template := range im.doc.Paths {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	var operations []smithy.ShapeID
	for _, template := range templates {
		item := im.doc.Paths[template]
		for _, method := range openapi.Methods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			if id, ok := im.importOperation(method, template, op); ok {
				operations = append(operations, id)
			}
		}
	}
	return operations
}

func (im *modelImport) importOperation(method, template string, op *openapi.Operation) (smithy.ShapeID, bool) {
	path := "paths." + template + "." + method
	opID := im.mintID(operationName(method, template, op.OperationID))

	shape := &smithy.Shape{Type: smithy.ShapeOperation}
	traits := map[string]any{}
	if op.Description != "" {
		traits[smithy.TraitDocumentation] = op.Description
	}
	if op.Deprecated {
		traits[smithy.TraitDeprecated] = map[string]any{}
	}
	if len(op.Tags) > 0 {
		tags := make([]any, len(op.Tags))
		for i, tag := range op.Tags {
			tags[i] = tag
		}
		traits[smithy.TraitTags] = tags
	}

	successCode := successStatus(op.Responses)
	traits[smithy.TraitHTTP] = map[string]any{
		"method": strings.ToUpper(method),
		"uri":    template,
		"code":   successCode,
	}
	shape.Traits = traits

	if inputID, ok := im.importInput(opID, op, method, path); ok {
		shape.Input = &smithy.ShapeRef{Target: inputID.String()}
	}
	if outputID, ok := im.importOutput(opID, op.Responses, successCode, path); ok {
		shape.Output = &smithy.ShapeRef{Target: outputID.String()}
	}
	shape.Errors = im.importErrors(opID, op.Responses, path)

	if err := im.model.AddShape(opID, shape); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, path, err.Error(), "operation dropped")
		return smithy.ShapeID{}, false
	}
	return opID, true
}

// importInput synthesizes the operation input structure from parameters and
// the request body. Returns false when the operation takes no input.
func (im *modelImport) importInput(opID smithy.ShapeID, op *openapi.Operation, method, path string) (smithy.ShapeID, bool) {
	inputID := smithy.ShapeID{Namespace: im.namespace, Name: opID.Name + "Input"}
	input := &smithy.Shape{Type: smithy.ShapeStructure, Members: smithy.NewMemberMap()}

	for i, param := range op.Parameters {
		paramPath := fmt.Sprintf("%s.parameters[%d]", path, i)
		member := im.memberFor(inputID, naming.ToPascalCase(param.Name), param.Schema, paramPath)
		if member.Traits == nil {
			member.Traits = make(map[string]any)
		}
		switch param.In {
		case "path":
			member.Traits[smithy.TraitHTTPLabel] = map[string]any{}
			member.Traits[smithy.TraitRequired] = map[string]any{}
		case "query":
			member.Traits[smithy.TraitHTTPQuery] = param.Name
		case "header":
			member.Traits[smithy.TraitHTTPHeader] = param.Name
		default:
			im.addIssue(KindUnsupportedSchema, SeverityWarning, paramPath,
				fmt.Sprintf("unsupported parameter location %q", param.In), "parameter dropped")
			continue
		}
		if param.Required && param.In != "path" {
			member.Traits[smithy.TraitRequired] = map[string]any{}
		}
		if param.Description != "" {
			member.Traits[smithy.TraitDocumentation] = param.Description
		}
		input.Members.Set(memberName(param.Name), member)
	}

	im.importBody(inputID, input, op.RequestBody, path+".requestBody")

	if input.Members.Len() == 0 {
		return smithy.ShapeID{}, false
	}
	// Reserve the name late so empty inputs do not consume it.
	inputID = im.mintID(inputID.Name)
	if err := im.model.AddShape(inputID, input); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, path, err.Error(), "")
		return smithy.ShapeID{}, false
	}
	return inputID, true
}

// importBody merges the request body into the input structure: inline object
// schemas flatten into plain members, anything else becomes an httpPayload
// member.
func (im *modelImport) importBody(inputID smithy.ShapeID, input *smithy.Shape, body *openapi.RequestBody, path string) {
	if body == nil {
		return
	}
	media := body.Content["application/json"]
	if media == nil || media.Schema == nil {
		if len(body.Content) > 0 {
			im.addIssue(KindUnsupportedSchema, SeverityWarning, path,
				"request body has no application/json content", "body dropped")
		}
		return
	}
	schema := media.Schema

	if schema.Ref == "" && schema.Properties != nil && schema.Properties.Len() > 0 {
		required := make(map[string]bool, len(schema.Required))
		for _, name := range schema.Required {
			required[name] = true
		}
		for _, name := range schema.Properties.Names() {
			member := im.memberFor(inputID, naming.ToPascalCase(name), schema.Properties.Get(name), path+".properties."+name)
			if required[name] {
				if member.Traits == nil {
					member.Traits = make(map[string]any)
				}
				member.Traits[smithy.TraitRequired] = map[string]any{}
			}
			input.Members.Set(name, member)
		}
		return
	}

	member := im.memberFor(inputID, "Body", schema, path)
	if member.Traits == nil {
		member.Traits = make(map[string]any)
	}
	member.Traits[smithy.TraitHTTPPayload] = map[string]any{}
	if body.Required {
		member.Traits[smithy.TraitRequired] = map[string]any{}
	}
	input.Members.Set("body", member)
}

// importOutput synthesizes the operation output structure from the success
// response. Returns false when the response carries neither body nor headers.
func (im *modelImport) importOutput(opID smithy.ShapeID, responses map[string]*openapi.Response, successCode int, path string) (smithy.ShapeID, bool) {
	response := responses[strconv.Itoa(successCode)]
	if response == nil {
		return smithy.ShapeID{}, false
	}
	outputID := smithy.ShapeID{Namespace: im.namespace, Name: opID.Name + "Output"}
	output := &smithy.Shape{Type: smithy.ShapeStructure, Members: smithy.NewMemberMap()}
	respPath := path + ".responses." + strconv.Itoa(successCode)

	headerNames := make([]string, 0, len(response.Headers))
	for name := range response.Headers {
		headerNames = append(headerNames, name)
	}
	sort.Strings(headerNames)
	for _, name := range headerNames {
		header := response.Headers[name]
		member := im.memberFor(outputID, naming.ToPascalCase(name), header.Schema, respPath+".headers."+name)
		if member.Traits == nil {
			member.Traits = make(map[string]any)
		}
		member.Traits[smithy.TraitHTTPHeader] = name
		if header.Required {
			member.Traits[smithy.TraitRequired] = map[string]any{}
		}
		output.Members.Set(memberName(name), member)
	}

	if media := response.Content["application/json"]; media != nil && media.Schema != nil {
		schema := media.Schema
		if schema.Ref == "" && schema.Properties != nil && schema.Properties.Len() > 0 {
			required := make(map[string]bool, len(schema.Required))
			for _, name := range schema.Required {
				required[name] = true
			}
			for _, name := range schema.Properties.Names() {
				member := im.memberFor(outputID, naming.ToPascalCase(name), schema.Properties.Get(name), respPath+".properties."+name)
				if required[name] {
					if member.Traits == nil {
						member.Traits = make(map[string]any)
					}
					member.Traits[smithy.TraitRequired] = map[string]any{}
				}
				output.Members.Set(name, member)
			}
		} else {
			member := im.memberFor(outputID, "Body", schema, respPath)
			if member.Traits == nil {
				member.Traits = make(map[string]any)
			}
			member.Traits[smithy.TraitHTTPPayload] = map[string]any{}
			output.Members.Set("body", member)
		}
	}

	if output.Members.Len() == 0 {
		return smithy.ShapeID{}, false
	}
	outputID = im.mintID(outputID.Name)
	if err := im.model.AddShape(outputID, output); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, respPath, err.Error(), "")
		return smithy.ShapeID{}, false
	}
	return outputID, true
}

// importErrors maps 4xx and 5xx responses to error structure references,
// applying the error and httpError traits to the referenced shapes.
func (im *modelImport) importErrors(opID smithy.ShapeID, responses map[string]*openapi.Response, path string) []*smithy.ShapeRef {
	statuses := make([]string, 0, len(responses))
	for status := range responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	var errs []*smithy.ShapeRef
	for _, status := range statuses {
		code, err := strconv.Atoi(status)
		if err != nil || code < 400 || code > 599 {
			continue
		}
		response := responses[status]
		respPath := path + ".responses." + status
		media := response.Content["application/json"]
		if media == nil || media.Schema == nil {
			im.addIssue(KindMissingSchema, SeverityWarning, respPath,
				"error response has no application/json schema", "response dropped")
			continue
		}
		schema := media.Schema
		var alternatives []*openapi.Schema
		if len(schema.OneOf) > 0 {
			alternatives = schema.OneOf
		} else {
			alternatives = []*openapi.Schema{schema}
		}
		for _, alt := range alternatives {
			errID, ok := im.errorShapeID(opID, alt, code, respPath)
			if !ok {
				continue
			}
			im.applyErrorTraits(errID, code)
			errs = append(errs, &smithy.ShapeRef{Target: errID.String()})
		}
	}
	return errs
}

func (im *modelImport) errorShapeID(opID smithy.ShapeID, schema *openapi.Schema, code int, path string) (smithy.ShapeID, bool) {
	if schema.Ref != "" {
		name, ok := strings.CutPrefix(schema.Ref, componentRefPrefix)
		if ok {
			if id, found := im.byName[name]; found {
				return id, true
			}
		}
		im.addIssue(KindMissingSchema, SeverityError, path,
			fmt.Sprintf("error reference %q does not resolve to a component schema", schema.Ref), "response dropped")
		return smithy.ShapeID{}, false
	}
	errID := im.mintID(opID.Name + strconv.Itoa(code) + "Error")
	shape := im.importSchema(errID, schema, path)
	if err := im.model.AddShape(errID, shape); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, path, err.Error(), "")
		return smithy.ShapeID{}, false
	}
	return errID, true
}

func (im *modelImport) applyErrorTraits(id smithy.ShapeID, code int) {
	shape := im.model.Shape(id)
	if shape == nil {
		return
	}
	if shape.Traits == nil {
		shape.Traits = make(map[string]any)
	}
	if _, ok := shape.Traits[smithy.TraitError]; !ok {
		class := "server"
		if code < 500 {
			class = "client"
		}
		shape.Traits[smithy.TraitError] = class
	}
	if _, ok := shape.Traits[smithy.TraitHTTPError]; !ok {
		shape.Traits[smithy.TraitHTTPError] = code
	}
}

// importService synthesizes the service shape from the info block,
// document-level metadata, and the security schemes.
func (im *modelImport) importService(operations []smithy.ShapeID) smithy.ShapeID {
	title := "Service"
	version := ""
	traits := map[string]any{}
	if im.doc.Info != nil {
		if im.doc.Info.Title != "" {
			title = im.doc.Info.Title
			traits[smithy.TraitTitle] = im.doc.Info.Title
		}
		if im.doc.Info.Description != "" {
			traits[smithy.TraitDocumentation] = im.doc.Info.Description
		}
		version = im.doc.Info.Version
	}
	if im.doc.ExternalDocs != nil && im.doc.ExternalDocs.URL != "" {
		name := im.doc.ExternalDocs.Description
		if name == "" {
			name = "Homepage"
		}
		traits[smithy.TraitExternalDocs] = map[string]any{name: im.doc.ExternalDocs.URL}
	}
	im.securityTraits(traits)

	serviceID := im.mintID(naming.ToPascalCase(title))
	service := &smithy.Shape{
		Type:    smithy.ShapeService,
		Version: version,
		Traits:  traits,
	}
	for _, opID := range operations {
		service.Operations = append(service.Operations, &smithy.ShapeRef{Target: opID.String()})
	}
	if err := im.model.AddShape(serviceID, service); err != nil {
		im.addIssue(KindUnsupportedSchema, SeverityCritical, "info", err.Error(), "")
	}
	return serviceID
}

func (im *modelImport) securityTraits(traits map[string]any) {
	if im.doc.Components == nil || len(im.doc.Components.SecuritySchemes) == 0 {
		return
	}
	names := make([]string, 0, len(im.doc.Components.SecuritySchemes))
	for name := range im.doc.Components.SecuritySchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scheme := im.doc.Components.SecuritySchemes[name]
		switch {
		case scheme.Type == "http" && scheme.Scheme == "basic":
			traits[smithy.TraitHTTPBasicAuth] = map[string]any{}
		case scheme.Type == "http" && scheme.Scheme == "bearer":
			traits[smithy.TraitHTTPBearerAuth] = map[string]any{}
		case scheme.Type == "apiKey":
			traits[smithy.TraitHTTPAPIKeyAuth] = map[string]any{
				"name": scheme.Name,
				"in":   scheme.In,
			}
		default:
			im.addIssue(KindUnsupportedSchema, SeverityWarning,
				"components.securitySchemes."+name,
				fmt.Sprintf("unsupported security scheme type %q", scheme.Type), "scheme dropped")
		}
	}
}

// successStatus picks the success code for an operation: the lowest 2xx
// response, defaulting to 200.
func successStatus(responses map[string]*openapi.Response) int {
	best := 0
	for status := range responses {
		code, err := strconv.Atoi(status)
		if err != nil || code < 200 || code > 299 {
			continue
		}
		if best == 0 || code < best {
			best = code
		}
	}
	if best == 0 {
		return 200
	}
	return best
}

// operationName derives a shape name for an operation: the operationId when
// present, otherwise the method plus the path's static segments.
func operationName(method, template, operationID string) string {
	if operationID != "" {
		return naming.ToPascalCase(operationID)
	}
	name := naming.ToPascalCase(method)
	for _, segment := range strings.Split(template, "/") {
		if segment == "" || strings.HasPrefix(segment, "{") {
			continue
		}
		name += naming.ToPascalCase(segment)
	}
	return name
}

// memberName converts a wire name like "X-Request-Id" or "max_results" into
// a Smithy member identifier.
func memberName(wire string) string {
	name := naming.ToCamelCase(wire)
	if name == "" {
		return "member"
	}
	return name
}

// enumMemberName derives a Smithy enum member name from a string value.
func enumMemberName(value string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// isPrimitiveSchema reports whether a schema resolves to a scalar prelude
// target, with no structure of its own worth naming.
func isPrimitiveSchema(schema *openapi.Schema) bool {
	if schema.Ref != "" || len(schema.OneOf) > 0 || len(schema.Enum) > 0 {
		return false
	}
	if schema.Items != nil || schema.Properties != nil || schema.AdditionalProperties != nil {
		return false
	}
	switch schema.TypeString() {
	case "string", "boolean", "integer", "number", "":
		return true
	}
	return false
}

// primitiveShapeType maps a scalar schema to its Smithy shape type.
func primitiveShapeType(schema *openapi.Schema) smithy.ShapeType {
	t, _ := smithy.PreludeShapeType(smithy.ShapeID{
		Namespace: smithy.PreludeNamespace,
		Name:      preludeNameFor(schema),
	})
	return t
}

// preludeNameFor maps a scalar schema's type and format to a prelude shape
// name. Unformatted numbers resolve to Double, matching the widest type the
// forward direction emits without a format.
func preludeNameFor(schema *openapi.Schema) string {
	switch schema.TypeString() {
	case "boolean":
		return "Boolean"
	case "integer":
		if schema.Format == "int64" {
			return "Long"
		}
		return "Integer"
	case "number":
		if schema.Format == "float" {
			return "Float"
		}
		return "Double"
	case "string":
		switch schema.Format {
		case "date-time":
			return "Timestamp"
		case "binary", "byte":
			return "Blob"
		}
		return "String"
	}
	return "Document"
}

// validNamespace checks the dotted-identifier form required of Smithy
// namespaces, e.g. "example.weather".
func validNamespace(ns string) bool {
	if ns == "" {
		return false
	}
	for _, segment := range strings.Split(ns, ".") {
		if segment == "" {
			return false
		}
		for i, r := range segment {
			alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
			digit := r >= '0' && r <= '9'
			if !alpha && !(i > 0 && digit) {
				return false
			}
		}
	}
	return true
}

func preludeTarget(name string) string {
	return smithy.PreludeNamespace + "#" + name
}

func asIntValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
