// Package openapi defines the OpenAPI 3.x document object model used as the
// target (and reverse-direction source) of Smithy conversion.
//
// The model covers OAS 3.0.x and 3.1.x with yaml and json struct tags
// throughout, inline extension capture on every object (the Extra maps), and
// an insertion-ordered [SchemaMap] for the components registry and object
// properties so that serialized output is deterministic.
//
// Text serialization helpers ([Document.MarshalYAML],
// [Document.MarshalJSONIndent], [ParseDocument]) live here as thin adapters;
// everything semantic happens in the converter package.
package openapi
