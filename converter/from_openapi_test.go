package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

func buildPetstoreDocument() *openapi.Document {
	pet := &openapi.Schema{Type: "object", Properties: openapi.NewSchemaMap(), Required: []string{"id", "name"}}
	pet.Properties.Set("id", &openapi.Schema{Type: "integer", Format: "int64"})
	pet.Properties.Set("name", &openapi.Schema{Type: "string", MaxLength: int64Ptr(64)})
	pet.Properties.Set("tags", &openapi.Schema{
		Type:  "array",
		Items: &openapi.Schema{Ref: "#/components/schemas/Tag"},
	})

	tag := &openapi.Schema{Type: "object", Properties: openapi.NewSchemaMap()}
	tag.Properties.Set("name", &openapi.Schema{Type: "string"})

	apiError := &openapi.Schema{Type: "object", Properties: openapi.NewSchemaMap()}
	apiError.Properties.Set("message", &openapi.Schema{Type: "string"})

	schemas := openapi.NewSchemaMap()
	schemas.Set("Pet", pet)
	schemas.Set("Tag", tag)
	schemas.Set("ApiError", apiError)

	return &openapi.Document{
		OpenAPI: "3.0.3",
		Info: &openapi.Info{
			Title:       "Pet Store",
			Version:     "1.0.0",
			Description: "Manages pets.",
		},
		Paths: openapi.Paths{
			"/pets/{petId}": &openapi.PathItem{
				Get: &openapi.Operation{
					OperationID: "getPet",
					Parameters: []*openapi.Parameter{
						{Name: "petId", In: "path", Required: true, Schema: &openapi.Schema{Type: "integer", Format: "int64"}},
						{Name: "verbose", In: "query", Schema: &openapi.Schema{Type: "boolean"}},
					},
					Responses: map[string]*openapi.Response{
						"200": {
							Description: "the pet",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: &openapi.Schema{Ref: "#/components/schemas/Pet"}},
							},
						},
						"404": {
							Description: "not found",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: &openapi.Schema{Ref: "#/components/schemas/ApiError"}},
							},
						},
					},
				},
			},
		},
		Components: &openapi.Components{Schemas: schemas},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestConvertDocumentComponents(t *testing.T) {
	result, err := ConvertDocument(buildPetstoreDocument(), "example.petstore")
	require.NoError(t, err)
	require.True(t, result.Success)
	model := result.Model

	pet := model.Shape(smithy.MustParseShapeID("example.petstore#Pet"))
	require.NotNil(t, pet)
	assert.Equal(t, smithy.ShapeStructure, pet.Type)
	assert.Equal(t, []string{"id", "name", "tags"}, pet.Members.Names())

	id := pet.Members.Get("id")
	assert.Equal(t, "smithy.api#Long", id.Target)
	assert.Contains(t, id.Traits, smithy.TraitRequired)

	name := pet.Members.Get("name")
	assert.Equal(t, "smithy.api#String", name.Target)
	require.Contains(t, name.Traits, smithy.TraitLength)
	length, ok := smithy.LengthTraitOf(name.Traits[smithy.TraitLength])
	require.True(t, ok)
	require.NotNil(t, length.Max)
	assert.EqualValues(t, 64, *length.Max)

	// The inline array became a synthesized list shape targeting Tag.
	tags := pet.Members.Get("tags")
	tagList := model.Shape(smithy.MustParseShapeID(tags.Target))
	require.NotNil(t, tagList)
	assert.Equal(t, smithy.ShapeList, tagList.Type)
	assert.Equal(t, "example.petstore#Tag", tagList.Member.Target)
}

func TestConvertDocumentOperations(t *testing.T) {
	result, err := ConvertDocument(buildPetstoreDocument(), "example.petstore")
	require.NoError(t, err)
	model := result.Model

	svc := model.Shape(result.Service)
	require.NotNil(t, svc)
	assert.Equal(t, smithy.ShapeService, svc.Type)
	assert.Equal(t, "example.petstore#PetStore", result.Service.String())
	assert.Equal(t, "1.0.0", svc.Version)
	assert.Equal(t, "Pet Store", svc.Traits[smithy.TraitTitle])
	assert.Equal(t, "Manages pets.", svc.Traits[smithy.TraitDocumentation])
	require.Len(t, svc.Operations, 1)

	op := model.Shape(smithy.MustParseShapeID("example.petstore#GetPet"))
	require.NotNil(t, op)
	assert.Equal(t, smithy.ShapeOperation, op.Type)

	binding, ok := smithy.HTTPTraitOf(op.Traits[smithy.TraitHTTP])
	require.True(t, ok)
	assert.Equal(t, "GET", binding.Method)
	assert.Equal(t, "/pets/{petId}", binding.URI)
	assert.Equal(t, 200, binding.Code)

	input := model.Shape(smithy.MustParseShapeID(op.Input.Target))
	require.NotNil(t, input)
	assert.Equal(t, []string{"petId", "verbose"}, input.Members.Names())
	petID := input.Members.Get("petId")
	assert.Contains(t, petID.Traits, smithy.TraitHTTPLabel)
	assert.Contains(t, petID.Traits, smithy.TraitRequired)
	verbose := input.Members.Get("verbose")
	assert.Equal(t, "verbose", verbose.Traits[smithy.TraitHTTPQuery])

	// The $ref response body becomes an httpPayload member.
	output := model.Shape(smithy.MustParseShapeID(op.Output.Target))
	require.NotNil(t, output)
	body := output.Members.Get("body")
	require.NotNil(t, body)
	assert.Equal(t, "example.petstore#Pet", body.Target)
	assert.Contains(t, body.Traits, smithy.TraitHTTPPayload)

	require.Len(t, op.Errors, 1)
	assert.Equal(t, "example.petstore#ApiError", op.Errors[0].Target)
	apiError := model.Shape(smithy.MustParseShapeID("example.petstore#ApiError"))
	require.NotNil(t, apiError)
	assert.Equal(t, "client", apiError.Traits[smithy.TraitError])
	assert.Equal(t, 404, apiError.Traits[smithy.TraitHTTPError])
}

func TestConvertDocumentEnumsAndUnions(t *testing.T) {
	schemas := openapi.NewSchemaMap()
	schemas.Set("Status", &openapi.Schema{Type: "string", Enum: []any{"available", "sold"}})
	schemas.Set("Code", &openapi.Schema{Type: "integer", Enum: []any{1, 2}})

	celsius := openapi.NewSchemaMap()
	celsius.Set("celsius", &openapi.Schema{Type: "number", Format: "float"})
	fahrenheit := openapi.NewSchemaMap()
	fahrenheit.Set("fahrenheit", &openapi.Schema{Type: "number", Format: "float"})
	schemas.Set("Temperature", &openapi.Schema{OneOf: []*openapi.Schema{
		{Type: "object", Properties: celsius, Required: []string{"celsius"}},
		{Type: "object", Properties: fahrenheit, Required: []string{"fahrenheit"}},
	}})

	doc := &openapi.Document{
		OpenAPI:    "3.0.3",
		Info:       &openapi.Info{Title: "Enums", Version: "1"},
		Components: &openapi.Components{Schemas: schemas},
	}

	result, err := ConvertDocument(doc, "example.enums")
	require.NoError(t, err)
	model := result.Model

	status := model.Shape(smithy.MustParseShapeID("example.enums#Status"))
	require.NotNil(t, status)
	assert.Equal(t, smithy.ShapeEnum, status.Type)
	assert.Equal(t, []string{"AVAILABLE", "SOLD"}, status.Members.Names())
	assert.Equal(t, "available", status.Members.Get("AVAILABLE").Traits[smithy.TraitEnumValue])

	code := model.Shape(smithy.MustParseShapeID("example.enums#Code"))
	require.NotNil(t, code)
	assert.Equal(t, smithy.ShapeIntEnum, code.Type)
	assert.Equal(t, []string{"VALUE_1", "VALUE_2"}, code.Members.Names())

	temperature := model.Shape(smithy.MustParseShapeID("example.enums#Temperature"))
	require.NotNil(t, temperature)
	assert.Equal(t, smithy.ShapeUnion, temperature.Type)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, temperature.Members.Names())
	assert.Equal(t, "smithy.api#Float", temperature.Members.Get("celsius").Target)
}

func TestConvertDocumentExtensionsRestored(t *testing.T) {
	schemas := openapi.NewSchemaMap()
	schemas.Set("Secret", &openapi.Schema{
		Type:  "string",
		Extra: map[string]any{"x-smithy-sensitive": map[string]any{}},
	})
	doc := &openapi.Document{
		OpenAPI:    "3.0.3",
		Info:       &openapi.Info{Title: "Vault", Version: "1"},
		Components: &openapi.Components{Schemas: schemas},
	}

	result, err := ConvertDocument(doc, "example.vault")
	require.NoError(t, err)

	secret := result.Model.Shape(smithy.MustParseShapeID("example.vault#Secret"))
	require.NotNil(t, secret)
	assert.Contains(t, secret.Traits, smithy.TraitSensitive)
}

func TestConvertDocumentBrokenRef(t *testing.T) {
	schemas := openapi.NewSchemaMap()
	broken := &openapi.Schema{Type: "object", Properties: openapi.NewSchemaMap()}
	broken.Properties.Set("child", &openapi.Schema{Ref: "#/components/schemas/Gone"})
	schemas.Set("Broken", broken)
	doc := &openapi.Document{
		OpenAPI:    "3.0.3",
		Info:       &openapi.Info{Title: "Broken", Version: "1"},
		Components: &openapi.Components{Schemas: schemas},
	}

	result, err := ConvertDocument(doc, "example.broken")
	require.NoError(t, err)
	assert.True(t, result.Success, "broken refs degrade, they do not abort")

	shape := result.Model.Shape(smithy.MustParseShapeID("example.broken#Broken"))
	require.NotNil(t, shape)
	assert.Equal(t, "smithy.api#Document", shape.Members.Get("child").Target)

	require.NotEmpty(t, result.Issues)
	assert.Equal(t, KindMissingSchema, result.Issues[0].Kind)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestConvertDocumentValidation(t *testing.T) {
	_, err := ConvertDocument(nil, "example")
	assert.Error(t, err)

	_, err = ConvertDocument(&openapi.Document{OpenAPI: "3.0.3"}, "not a namespace")
	assert.ErrorContains(t, err, "invalid target namespace")
}

func TestRoundTripWeatherService(t *testing.T) {
	model := buildWeatherModel(t)

	forward, err := Convert(model, smithy.ShapeID{})
	require.NoError(t, err)
	require.True(t, forward.Success)

	back, err := ConvertDocument(forward.Document, "example.weather")
	require.NoError(t, err)
	require.True(t, back.Success)

	again, err := Convert(back.Model, back.Service)
	require.NoError(t, err)
	require.True(t, again.Success)

	// The documents agree on the HTTP surface: same paths, methods,
	// parameters, and status codes.
	require.Len(t, again.Document.Paths, len(forward.Document.Paths))
	for template, item := range forward.Document.Paths {
		reitem := again.Document.Paths[template]
		require.NotNil(t, reitem, "path %s survives the round trip", template)
		for _, method := range openapi.Methods {
			op := item.Operation(method)
			reop := reitem.Operation(method)
			if op == nil {
				assert.Nil(t, reop)
				continue
			}
			require.NotNil(t, reop, "%s %s survives the round trip", method, template)

			var wantParams, gotParams []string
			for _, p := range op.Parameters {
				wantParams = append(wantParams, p.In+":"+p.Name)
			}
			for _, p := range reop.Parameters {
				gotParams = append(gotParams, p.In+":"+p.Name)
			}
			assert.ElementsMatch(t, wantParams, gotParams)

			var wantCodes, gotCodes []string
			for code := range op.Responses {
				wantCodes = append(wantCodes, code)
			}
			for code := range reop.Responses {
				gotCodes = append(gotCodes, code)
			}
			assert.ElementsMatch(t, wantCodes, gotCodes)

			assert.Equal(t, op.RequestBody == nil, reop.RequestBody == nil)
		}
	}

	assert.Equal(t, forward.Document.Info.Title, again.Document.Info.Title)
	assert.Equal(t, forward.Document.Info.Version, again.Document.Info.Version)
}
