package converter

import (
	"fmt"

	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

// Option configures a ConvertWithOptions call.
type Option func(*convertOptions) error

type convertOptions struct {
	model     *smithy.Model
	service   smithy.ShapeID
	converter Converter
}

// WithModel sets the Smithy model to convert. Required.
func WithModel(model *smithy.Model) Option {
	return func(o *convertOptions) error {
		if model == nil {
			return fmt.Errorf("model must not be nil")
		}
		o.model = model
		return nil
	}
}

// WithService selects the service shape to convert. When omitted, the
// model's first service is converted.
func WithService(id smithy.ShapeID) Option {
	return func(o *convertOptions) error {
		o.service = id
		return nil
	}
}

// WithOpenAPIVersion sets the target OpenAPI dialect ("3.0" or "3.1").
func WithOpenAPIVersion(version string) Option {
	return func(o *convertOptions) error {
		v, ok := openapi.ParseVersion(version)
		if !ok {
			return fmt.Errorf("invalid OpenAPI version: %s", version)
		}
		o.converter.Version = v
		return nil
	}
}

// WithNamingStrategy sets the component naming strategy.
func WithNamingStrategy(strategy NamingStrategy) Option {
	return func(o *convertOptions) error {
		if strategy != NamingShortName && strategy != NamingFullyQualified {
			return fmt.Errorf("invalid naming strategy: %d", strategy)
		}
		o.converter.NamingStrategy = strategy
		return nil
	}
}

// WithExtensionNamespace sets the prefix used for vendor-extension keys.
func WithExtensionNamespace(ns string) Option {
	return func(o *convertOptions) error {
		if ns == "" {
			return fmt.Errorf("extension namespace must not be empty")
		}
		o.converter.ExtensionNamespace = ns
		return nil
	}
}

// WithInlineSimpleSchemas inlines named simple shapes and enums instead of
// registering them as components.
func WithInlineSimpleSchemas(inline bool) Option {
	return func(o *convertOptions) error {
		o.converter.InlineSimpleSchemas = inline
		return nil
	}
}

// WithIncludeInfo controls whether informational issues are reported.
// They are included by default.
func WithIncludeInfo(include bool) Option {
	return func(o *convertOptions) error {
		o.converter.IncludeInfo = include
		return nil
	}
}

// ConvertWithOptions converts a Smithy model to an OpenAPI document using
// the functional options API.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithModel(model),
//	    converter.WithOpenAPIVersion("3.1"),
//	    converter.WithNamingStrategy(converter.NamingFullyQualified),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	options := convertOptions{converter: *New()}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}
	if options.model == nil {
		return nil, fmt.Errorf("a model is required: use WithModel")
	}
	return options.converter.Convert(options.model, options.service)
}
