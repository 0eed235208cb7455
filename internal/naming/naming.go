// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Use golang.org/x/text/cases for proper Unicode title casing
// (strings.Title is deprecated).
var titleCaser = cases.Title(language.English, cases.NoLower)

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) delimit segments; each segment
// is title-cased with the rest of its letters left untouched.
// Example: "user_profile" -> "UserProfile"
// Example: "example.weather" -> "ExampleWeather"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for _, segment := range strings.FieldsFunc(s, isSeparator) {
		result.WriteString(titleCaser.String(segment))
	}
	return result.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/'
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Title converts the first letter of each word to uppercase using
// Unicode-aware title casing, leaving the rest of each word untouched.
func Title(s string) string {
	return titleCaser.String(s)
}

// SanitizeComponentName strips characters that are not valid in an OpenAPI
// component key (letters, digits, ".", "-", "_" are allowed).
func SanitizeComponentName(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
