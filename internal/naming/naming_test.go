package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"example.weather", "ExampleWeather"},
		{"already", "Already"},
		{"Widget", "Widget"},
		{"uploadURL", "UploadURL"},
		{"weather service", "Weather Service"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "userProfile", ToCamelCase("user_profile"))
	assert.Equal(t, "widget", ToCamelCase("Widget"))
	assert.Equal(t, "", ToCamelCase(""))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Weather Service", Title("weather service"))
	assert.Equal(t, "GetForecast", Title("getForecast"))
}

func TestSanitizeComponentName(t *testing.T) {
	assert.Equal(t, "My.Widget-2_x", SanitizeComponentName("My.Widget-2_x"))
	assert.Equal(t, "Widgetid", SanitizeComponentName("Widget{id}"))
	assert.Equal(t, "", SanitizeComponentName("#$%"))
}
