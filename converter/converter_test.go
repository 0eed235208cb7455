package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/smithytools/smithy"
)

// buildWeatherModel assembles the model used across the converter tests:
// a service with a read operation bound to GET /cities/{cityId}/forecast and
// a create operation bound to POST /cities, one declared error, and a small
// graph of data shapes.
func buildWeatherModel(t *testing.T) *smithy.Model {
	t.Helper()
	m := smithy.NewModel()

	add := func(raw string, shape *smithy.Shape) {
		require.NoError(t, m.AddShape(smithy.MustParseShapeID(raw), shape))
	}

	add("example.weather#Weather", &smithy.Shape{
		Type:    smithy.ShapeService,
		Version: "2006-03-01",
		Operations: []*smithy.ShapeRef{
			{Target: "example.weather#GetForecast"},
			{Target: "example.weather#CreateCity"},
		},
		Traits: map[string]any{
			smithy.TraitTitle:         "Weather Service",
			smithy.TraitDocumentation: "Provides weather forecasts.",
			smithy.TraitHTTPAPIKeyAuth: map[string]any{
				"name": "X-Api-Key",
				"in":   "header",
			},
		},
	})

	add("example.weather#GetForecast", &smithy.Shape{
		Type:   smithy.ShapeOperation,
		Input:  &smithy.ShapeRef{Target: "example.weather#GetForecastInput"},
		Output: &smithy.ShapeRef{Target: "example.weather#GetForecastOutput"},
		Errors: []*smithy.ShapeRef{{Target: "example.weather#NoSuchResource"}},
		Traits: map[string]any{
			smithy.TraitHTTP: map[string]any{
				"method": "GET",
				"uri":    "/cities/{cityId}/forecast",
				"code":   200,
			},
			smithy.TraitReadonly: map[string]any{},
		},
	})

	input := smithy.NewMemberMap()
	input.Set("cityId", &smithy.MemberRef{
		Target: "smithy.api#String",
		Traits: map[string]any{
			smithy.TraitHTTPLabel: map[string]any{},
			smithy.TraitRequired:  map[string]any{},
		},
	})
	input.Set("units", &smithy.MemberRef{
		Target: "smithy.api#String",
		Traits: map[string]any{smithy.TraitHTTPQuery: "units"},
	})
	add("example.weather#GetForecastInput", &smithy.Shape{Type: smithy.ShapeStructure, Members: input})

	output := smithy.NewMemberMap()
	output.Set("chanceOfRain", &smithy.MemberRef{Target: "smithy.api#Float"})
	output.Set("forecasts", &smithy.MemberRef{Target: "example.weather#ForecastList"})
	add("example.weather#GetForecastOutput", &smithy.Shape{Type: smithy.ShapeStructure, Members: output})

	add("example.weather#ForecastList", &smithy.Shape{
		Type:   smithy.ShapeList,
		Member: &smithy.MemberRef{Target: "example.weather#Forecast"},
	})

	forecast := smithy.NewMemberMap()
	forecast.Set("date", &smithy.MemberRef{Target: "smithy.api#Timestamp"})
	forecast.Set("summary", &smithy.MemberRef{Target: "smithy.api#String"})
	add("example.weather#Forecast", &smithy.Shape{Type: smithy.ShapeStructure, Members: forecast})

	errMembers := smithy.NewMemberMap()
	errMembers.Set("resourceType", &smithy.MemberRef{
		Target: "smithy.api#String",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	add("example.weather#NoSuchResource", &smithy.Shape{
		Type:    smithy.ShapeStructure,
		Members: errMembers,
		Traits: map[string]any{
			smithy.TraitError:     "client",
			smithy.TraitHTTPError: 404,
		},
	})

	add("example.weather#CreateCity", &smithy.Shape{
		Type:   smithy.ShapeOperation,
		Input:  &smithy.ShapeRef{Target: "example.weather#CreateCityInput"},
		Output: &smithy.ShapeRef{Target: "example.weather#CreateCityOutput"},
		Traits: map[string]any{
			smithy.TraitHTTP: map[string]any{
				"method": "POST",
				"uri":    "/cities",
				"code":   201,
			},
		},
	})

	createIn := smithy.NewMemberMap()
	createIn.Set("name", &smithy.MemberRef{
		Target: "smithy.api#String",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	createIn.Set("coordinates", &smithy.MemberRef{
		Target: "example.weather#CityCoordinates",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	add("example.weather#CreateCityInput", &smithy.Shape{Type: smithy.ShapeStructure, Members: createIn})

	coords := smithy.NewMemberMap()
	coords.Set("latitude", &smithy.MemberRef{
		Target: "smithy.api#Float",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	coords.Set("longitude", &smithy.MemberRef{
		Target: "smithy.api#Float",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	add("example.weather#CityCoordinates", &smithy.Shape{Type: smithy.ShapeStructure, Members: coords})

	createOut := smithy.NewMemberMap()
	createOut.Set("cityId", &smithy.MemberRef{
		Target: "smithy.api#String",
		Traits: map[string]any{smithy.TraitRequired: map[string]any{}},
	})
	add("example.weather#CreateCityOutput", &smithy.Shape{Type: smithy.ShapeStructure, Members: createOut})

	return m
}

func TestConvertWeatherService(t *testing.T) {
	model := buildWeatherModel(t)

	result, err := Convert(model, smithy.ShapeID{})
	require.NoError(t, err)
	require.NotNil(t, result.Document)

	assert.True(t, result.Success)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "example.weather#Weather", result.Service.String())
	assert.Equal(t, "3.0.3", result.Document.OpenAPI)
	assert.Equal(t, "3.0.3", result.TargetVersion)

	require.NotNil(t, result.Document.Info)
	assert.Equal(t, "Weather Service", result.Document.Info.Title)
	assert.Equal(t, "2006-03-01", result.Document.Info.Version)
	assert.Equal(t, "Provides weather forecasts.", result.Document.Info.Description)

	require.Len(t, result.Document.Paths, 2)
	forecast := result.Document.Paths["/cities/{cityId}/forecast"]
	require.NotNil(t, forecast)
	require.NotNil(t, forecast.Get)
	assert.Equal(t, "GetForecast", forecast.Get.OperationID)

	cities := result.Document.Paths["/cities"]
	require.NotNil(t, cities)
	require.NotNil(t, cities.Post)
	assert.Equal(t, "CreateCity", cities.Post.OperationID)

	require.NotNil(t, result.Document.Components)
	schemas := result.Document.Components.Schemas
	require.NotNil(t, schemas)
	assert.Equal(t, []string{
		"GetForecastInput",
		"GetForecastOutput",
		"ForecastList",
		"Forecast",
		"NoSuchResource",
		"CreateCityInput",
		"CityCoordinates",
		"CreateCityOutput",
	}, schemas.Names())

	require.Contains(t, result.Document.Components.SecuritySchemes, "httpApiKeyAuth")
	apiKey := result.Document.Components.SecuritySchemes["httpApiKeyAuth"]
	assert.Equal(t, "apiKey", apiKey.Type)
	assert.Equal(t, "X-Api-Key", apiKey.Name)
	assert.Equal(t, "header", apiKey.In)
	require.Len(t, result.Document.Security, 1)
}

func TestConvertDeterministic(t *testing.T) {
	model := buildWeatherModel(t)

	first, err := Convert(model, smithy.ShapeID{})
	require.NoError(t, err)
	second, err := Convert(model, smithy.ShapeID{})
	require.NoError(t, err)

	firstJSON, err := first.Document.MarshalJSONIndent("", "  ")
	require.NoError(t, err)
	secondJSON, err := second.Document.MarshalJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	firstYAML, err := first.Document.MarshalYAML()
	require.NoError(t, err)
	secondYAML, err := second.Document.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, string(firstYAML), string(secondYAML))
}

func TestConvertTargetVersion31(t *testing.T) {
	model := buildWeatherModel(t)

	result, err := ConvertWithOptions(
		WithModel(model),
		WithOpenAPIVersion("3.1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", result.Document.OpenAPI)
	assert.NotEmpty(t, result.Document.JSONSchemaDialect)
}

func TestConvertInputValidation(t *testing.T) {
	_, err := Convert(nil, smithy.ShapeID{})
	assert.Error(t, err)

	empty := smithy.NewModel()
	_, err = Convert(empty, smithy.ShapeID{})
	assert.ErrorContains(t, err, "no service shapes")

	m := smithy.NewModel()
	id := smithy.MustParseShapeID("example#NotAService")
	require.NoError(t, m.AddShape(id, &smithy.Shape{Type: smithy.ShapeStructure}))
	_, err = Convert(m, id)
	assert.ErrorContains(t, err, "not a service")

	_, err = Convert(m, smithy.MustParseShapeID("example#Missing"))
	assert.ErrorContains(t, err, "not found")
}

func TestConvertWithOptionsValidation(t *testing.T) {
	_, err := ConvertWithOptions()
	assert.ErrorContains(t, err, "model is required")

	_, err = ConvertWithOptions(
		WithModel(smithy.NewModel()),
		WithOpenAPIVersion("2.0"),
	)
	assert.ErrorContains(t, err, "invalid OpenAPI version")

	_, err = ConvertWithOptions(
		WithModel(smithy.NewModel()),
		WithExtensionNamespace(""),
	)
	assert.ErrorContains(t, err, "extension namespace")
}

func TestConvertMissingShapeFails(t *testing.T) {
	m := smithy.NewModel()
	require.NoError(t, m.AddShape(smithy.MustParseShapeID("example#Svc"), &smithy.Shape{
		Type:       smithy.ShapeService,
		Version:    "1",
		Operations: []*smithy.ShapeRef{{Target: "example#Op"}},
	}))

	_, err := Convert(m, smithy.ShapeID{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example#Op")
}

func TestConvertUnboundOperationSkipped(t *testing.T) {
	m := smithy.NewModel()
	require.NoError(t, m.AddShape(smithy.MustParseShapeID("example#Svc"), &smithy.Shape{
		Type:       smithy.ShapeService,
		Version:    "1",
		Operations: []*smithy.ShapeRef{{Target: "example#Ping"}},
	}))
	require.NoError(t, m.AddShape(smithy.MustParseShapeID("example#Ping"), &smithy.Shape{
		Type: smithy.ShapeOperation,
	}))

	result, err := Convert(m, smithy.ShapeID{})
	require.NoError(t, err)
	assert.True(t, result.Success, "skipped operations are not critical")
	assert.Empty(t, result.Document.Paths)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, KindMissingHTTPBinding, result.Issues[0].Kind)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, 1, result.WarningCount)
}

func TestConvertExcludesInfoIssues(t *testing.T) {
	// Two shapes with the same simple name in different namespaces force a
	// naming collision, reported at info severity.
	m := smithy.NewModel()
	add := func(raw string, shape *smithy.Shape) {
		require.NoError(t, m.AddShape(smithy.MustParseShapeID(raw), shape))
	}
	add("example#Svc", &smithy.Shape{
		Type:       smithy.ShapeService,
		Version:    "1",
		Operations: []*smithy.ShapeRef{{Target: "example#Get"}},
	})
	members := smithy.NewMemberMap()
	members.Set("a", &smithy.MemberRef{Target: "example.one#Thing"})
	members.Set("b", &smithy.MemberRef{Target: "example.two#Thing"})
	add("example#Get", &smithy.Shape{
		Type:   smithy.ShapeOperation,
		Output: &smithy.ShapeRef{Target: "example#GetOutput"},
		Traits: map[string]any{
			smithy.TraitHTTP: map[string]any{"method": "GET", "uri": "/things"},
		},
	})
	add("example#GetOutput", &smithy.Shape{Type: smithy.ShapeStructure, Members: members})
	add("example.one#Thing", &smithy.Shape{Type: smithy.ShapeStructure})
	add("example.two#Thing", &smithy.Shape{Type: smithy.ShapeStructure})

	withInfo, err := Convert(m, smithy.ShapeID{})
	require.NoError(t, err)
	require.Equal(t, 1, withInfo.InfoCount)
	assert.Equal(t, KindNameCollision, withInfo.Issues[0].Kind)

	quiet := New()
	quiet.IncludeInfo = false
	withoutInfo, err := quiet.Convert(m, smithy.ShapeID{})
	require.NoError(t, err)
	assert.Zero(t, withoutInfo.InfoCount)
	assert.Empty(t, withoutInfo.Issues)

	viaOption, err := ConvertWithOptions(WithModel(m), WithIncludeInfo(false))
	require.NoError(t, err)
	assert.Empty(t, viaOption.Issues)
}
