package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

// assembleDocument builds the top-level OpenAPI document for one service:
// the info block from the service shape, a path entry per HTTP-bound
// operation, service-level security schemes, and the components registry
// accumulated during schema translation.
func assembleDocument(ctx *conversionContext, serviceID smithy.ShapeID, operations []smithy.ShapeID) (*openapi.Document, error) {
	svc := ctx.model.Shape(serviceID)

	doc := &openapi.Document{
		OpenAPI: ctx.cfg.version.DocumentVersion(),
		Info:    assembleInfo(serviceID, svc),
		Paths:   openapi.Paths{},
	}
	if ctx.cfg.version == openapi.Version31 {
		doc.JSONSchemaDialect = "https://spec.openapis.org/oas/3.1/dialect/base"
	}
	if docsRaw, ok := svc.Trait(smithy.TraitExternalDocs); ok {
		if docs, dok := smithy.ExternalDocsTraitOf(docsRaw); dok {
			doc.ExternalDocs = externalDocsFromTrait(docs)
		}
	}

	securitySchemes, security := assembleSecurity(svc)

	for _, opID := range operations {
		if err := assembleOperation(ctx, doc, opID); err != nil {
			return nil, err
		}
	}

	doc.Components = &openapi.Components{Schemas: ctx.registry}
	if len(securitySchemes) > 0 {
		doc.Components.SecuritySchemes = securitySchemes
		doc.Security = security
	}
	return doc, nil
}

func assembleInfo(serviceID smithy.ShapeID, svc *smithy.Shape) *openapi.Info {
	info := &openapi.Info{Title: serviceID.Name, Version: svc.Version}
	if title, ok := svc.Trait(smithy.TraitTitle); ok {
		if text, tok := title.(string); tok && text != "" {
			info.Title = text
		}
	}
	if docs, ok := svc.Trait(smithy.TraitDocumentation); ok {
		if text, tok := docs.(string); tok {
			info.Description = text
		}
	}
	if info.Version == "" {
		info.Version = "0.0.0"
	}
	return info
}

// assembleSecurity maps the service's auth traits to security schemes and a
// document-level security requirement listing each of them.
func assembleSecurity(svc *smithy.Shape) (map[string]*openapi.SecurityScheme, []openapi.SecurityRequirement) {
	schemes := make(map[string]*openapi.SecurityScheme)
	var requirement openapi.SecurityRequirement

	if svc.HasTrait(smithy.TraitHTTPBasicAuth) {
		schemes["httpBasicAuth"] = &openapi.SecurityScheme{Type: "http", Scheme: "basic"}
		requirement = addRequirement(requirement, "httpBasicAuth")
	}
	if svc.HasTrait(smithy.TraitHTTPBearerAuth) {
		schemes["httpBearerAuth"] = &openapi.SecurityScheme{Type: "http", Scheme: "bearer"}
		requirement = addRequirement(requirement, "httpBearerAuth")
	}
	if raw, ok := svc.Trait(smithy.TraitHTTPAPIKeyAuth); ok {
		if apiKey, aok := smithy.APIKeyAuthTraitOf(raw); aok {
			schemes["httpApiKeyAuth"] = &openapi.SecurityScheme{
				Type: "apiKey",
				Name: apiKey.Name,
				In:   apiKey.In,
			}
			requirement = addRequirement(requirement, "httpApiKeyAuth")
		}
	}

	if len(schemes) == 0 {
		return nil, nil
	}
	return schemes, []openapi.SecurityRequirement{requirement}
}

func addRequirement(req openapi.SecurityRequirement, name string) openapi.SecurityRequirement {
	if req == nil {
		req = openapi.SecurityRequirement{}
	}
	req[name] = []string{}
	return req
}

// assembleOperation derives one path entry from an operation's HTTP binding
// trait. Operations without the trait are skipped with a MissingHttpBinding
// issue; the conversion continues.
func assembleOperation(ctx *conversionContext, doc *openapi.Document, opID smithy.ShapeID) error {
	op := ctx.model.Shape(opID)

	httpRaw, ok := op.Trait(smithy.TraitHTTP)
	if !ok {
		ctx.addShapeIssue(KindMissingHTTPBinding, SeverityWarning, opID,
			"operation has no smithy.api#http trait", "operation omitted from the path map")
		return nil
	}
	binding, bok := smithy.HTTPTraitOf(httpRaw)
	if !bok {
		ctx.addShapeIssue(KindInvalidTraitValue, SeverityWarning, opID,
			"smithy.api#http trait is malformed", "operation omitted from the path map")
		return nil
	}

	method := strings.ToLower(binding.Method)
	pathTemplate, _, _ := strings.Cut(binding.URI, "?")

	operation := &openapi.Operation{OperationID: opID.Name}
	if docs, dok := op.Trait(smithy.TraitDocumentation); dok {
		if text, tok := docs.(string); tok {
			operation.Description = text
		}
	}
	if op.HasTrait(smithy.TraitDeprecated) {
		operation.Deprecated = true
	}
	if tagsRaw, tok := op.Trait(smithy.TraitTags); tok {
		operation.Tags = smithy.TagsTraitOf(tagsRaw)
	}

	if err := assembleRequest(ctx, operation, op, method); err != nil {
		return err
	}

	operation.Responses = make(map[string]*openapi.Response)
	if err := assembleResponse(ctx, operation, opID, op, binding.Code); err != nil {
		return err
	}
	if err := assembleErrorResponses(ctx, operation, opID, op); err != nil {
		return err
	}

	pathItem := doc.Paths[pathTemplate]
	if pathItem == nil {
		pathItem = &openapi.PathItem{}
		doc.Paths[pathTemplate] = pathItem
	}
	if !pathItem.SetOperation(method, operation) {
		ctx.addShapeIssue(KindInvalidTraitValue, SeverityWarning, opID,
			fmt.Sprintf("unsupported HTTP method %q", binding.Method), "operation omitted from the path map")
	}
	return nil
}

// methodHasBody reports whether unbound input members default to the request
// body. For bodiless methods they become query parameters instead.
func methodHasBody(method string) bool {
	switch method {
	case "post", "put", "patch":
		return true
	}
	return false
}

// assembleRequest maps the operation input structure's members to
// parameters and a request body, honoring the httpLabel, httpQuery,
// httpHeader, and httpPayload member traits.
func assembleRequest(ctx *conversionContext, operation *openapi.Operation, op *smithy.Shape, method string) error {
	input, err := targetShape(ctx, op.Input)
	if err != nil {
		return err
	}
	if input == nil || input.Members.Len() == 0 {
		return nil
	}

	bodyProperties := openapi.NewSchemaMap()
	var bodyRequired []string
	var payloadSchema *openapi.Schema
	var payloadRequired bool

	for _, name := range input.Members.Names() {
		member := input.Members.Get(name)
		required := member.HasTrait(smithy.TraitRequired)

		switch {
		case member.HasTrait(smithy.TraitHTTPLabel):
			schema, serr := ctx.translateTarget(member)
			if serr != nil {
				return serr
			}
			operation.Parameters = append(operation.Parameters, &openapi.Parameter{
				Name: name, In: "path", Required: true, Schema: schema,
			})

		case member.HasTrait(smithy.TraitHTTPQuery):
			schema, serr := ctx.translateTarget(member)
			if serr != nil {
				return serr
			}
			queryName := name
			if raw, qok := member.Trait(smithy.TraitHTTPQuery); qok {
				if s, sok := raw.(string); sok && s != "" {
					queryName = s
				}
			}
			operation.Parameters = append(operation.Parameters, &openapi.Parameter{
				Name: queryName, In: "query", Required: required, Schema: schema,
			})

		case member.HasTrait(smithy.TraitHTTPHeader):
			schema, serr := ctx.translateTarget(member)
			if serr != nil {
				return serr
			}
			headerName := name
			if raw, hok := member.Trait(smithy.TraitHTTPHeader); hok {
				if s, sok := raw.(string); sok && s != "" {
					headerName = s
				}
			}
			operation.Parameters = append(operation.Parameters, &openapi.Parameter{
				Name: headerName, In: "header", Required: required, Schema: schema,
			})

		case member.HasTrait(smithy.TraitHTTPPayload):
			payloadSchema, err = ctx.translateTarget(member)
			if err != nil {
				return err
			}
			payloadRequired = required

		default:
			if methodHasBody(method) {
				schema, serr := ctx.translateTarget(member)
				if serr != nil {
					return serr
				}
				bodyProperties.Set(name, schema)
				if required {
					bodyRequired = append(bodyRequired, name)
				}
			} else {
				schema, serr := ctx.translateTarget(member)
				if serr != nil {
					return serr
				}
				operation.Parameters = append(operation.Parameters, &openapi.Parameter{
					Name: name, In: "query", Required: required, Schema: schema,
				})
			}
		}
	}

	var bodySchema *openapi.Schema
	switch {
	case payloadSchema != nil:
		bodySchema = payloadSchema
	case bodyProperties.Len() > 0:
		bodySchema = &openapi.Schema{Type: "object", Properties: bodyProperties}
		if len(bodyRequired) > 0 {
			bodySchema.Required = bodyRequired
			payloadRequired = true
		}
	}
	if bodySchema != nil {
		operation.RequestBody = &openapi.RequestBody{
			Required: payloadRequired,
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: bodySchema},
			},
		}
	}
	return nil
}

// assembleResponse builds the success response from the operation output:
// httpHeader members become response headers, the httpPayload member (or the
// remaining members as a synthesized object) becomes the body.
func assembleResponse(ctx *conversionContext, operation *openapi.Operation, opID smithy.ShapeID, op *smithy.Shape, code int) error {
	status := strconv.Itoa(code)
	response := &openapi.Response{
		Description: fmt.Sprintf("%s %s response", opID.Name, status),
	}
	operation.Responses[status] = response

	output, err := targetShape(ctx, op.Output)
	if err != nil {
		return err
	}
	if output == nil || output.Members.Len() == 0 {
		return nil
	}

	bodyProperties := openapi.NewSchemaMap()
	var bodyRequired []string
	var payloadSchema *openapi.Schema

	for _, name := range output.Members.Names() {
		member := output.Members.Get(name)
		switch {
		case member.HasTrait(smithy.TraitHTTPHeader):
			schema, serr := ctx.translateTarget(member)
			if serr != nil {
				return serr
			}
			headerName := name
			if raw, hok := member.Trait(smithy.TraitHTTPHeader); hok {
				if s, sok := raw.(string); sok && s != "" {
					headerName = s
				}
			}
			if response.Headers == nil {
				response.Headers = make(map[string]*openapi.Header)
			}
			response.Headers[headerName] = &openapi.Header{
				Required: member.HasTrait(smithy.TraitRequired),
				Schema:   schema,
			}
		case member.HasTrait(smithy.TraitHTTPPayload):
			payloadSchema, err = ctx.translateTarget(member)
			if err != nil {
				return err
			}
		default:
			schema, serr := ctx.translateTarget(member)
			if serr != nil {
				return serr
			}
			bodyProperties.Set(name, schema)
			if member.HasTrait(smithy.TraitRequired) {
				bodyRequired = append(bodyRequired, name)
			}
		}
	}

	var bodySchema *openapi.Schema
	switch {
	case payloadSchema != nil:
		bodySchema = payloadSchema
	case bodyProperties.Len() > 0:
		bodySchema = &openapi.Schema{Type: "object", Properties: bodyProperties}
		if len(bodyRequired) > 0 {
			bodySchema.Required = bodyRequired
		}
	}
	if bodySchema != nil {
		response.Content = map[string]*openapi.MediaType{
			"application/json": {Schema: bodySchema},
		}
	}
	return nil
}

// assembleErrorResponses folds the operation's declared errors into
// additional response entries keyed by each error's status code. Errors
// sharing a status code are merged into a oneOf composition.
func assembleErrorResponses(ctx *conversionContext, operation *openapi.Operation, opID smithy.ShapeID, op *smithy.Shape) error {
	for _, ref := range op.Errors {
		errID, err := ref.TargetID()
		if err != nil {
			return err
		}
		errShape := ctx.model.Shape(errID)
		if errShape == nil {
			return fmt.Errorf("error shape %s referenced by %s but not defined in model", errID, opID)
		}

		status := strconv.Itoa(errorStatusCode(errShape))
		name, cerr := ctx.ensureComponent(errID)
		if cerr != nil {
			return cerr
		}
		errSchema := &openapi.Schema{Ref: "#/components/schemas/" + name}

		existing, merge := operation.Responses[status]
		if !merge {
			operation.Responses[status] = &openapi.Response{
				Description: fmt.Sprintf("%s error", errID.Name),
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: errSchema},
				},
			}
			continue
		}
		mergeErrorResponse(existing, errID.Name, errSchema)
	}
	return nil
}

// errorStatusCode derives the HTTP status for an error shape: the httpError
// trait wins, then the error trait's class (client 400, server 500), then
// 500.
func errorStatusCode(shape *smithy.Shape) int {
	if raw, ok := shape.Trait(smithy.TraitHTTPError); ok {
		if code := asIntValue(raw); code >= 100 && code <= 599 {
			return code
		}
	}
	if raw, ok := shape.Trait(smithy.TraitError); ok {
		if class, cok := raw.(string); cok && class == "client" {
			return 400
		}
	}
	return 500
}

// mergeErrorResponse combines another error schema into an existing response
// entry as a oneOf composition.
func mergeErrorResponse(response *openapi.Response, errName string, errSchema *openapi.Schema) {
	response.Description = response.Description + " or " + errName
	mediaType := response.Content["application/json"]
	if mediaType == nil || mediaType.Schema == nil {
		response.Content = map[string]*openapi.MediaType{
			"application/json": {Schema: errSchema},
		}
		return
	}
	if len(mediaType.Schema.OneOf) > 0 {
		mediaType.Schema.OneOf = append(mediaType.Schema.OneOf, errSchema)
		return
	}
	mediaType.Schema = &openapi.Schema{OneOf: []*openapi.Schema{mediaType.Schema, errSchema}}
}

// targetShape resolves an operation's input or output reference to its
// structure shape. The prelude Unit shape and nil references both mean "no
// payload" and resolve to nil.
func targetShape(ctx *conversionContext, ref *smithy.ShapeRef) (*smithy.Shape, error) {
	if ref == nil {
		return nil, nil
	}
	id, err := ref.TargetID()
	if err != nil {
		return nil, err
	}
	if id == smithy.UnitShapeID {
		return nil, nil
	}
	shape := ctx.model.Shape(id)
	if shape == nil {
		return nil, fmt.Errorf("shape %s referenced but not defined in model", id)
	}
	return shape, nil
}
