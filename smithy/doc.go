// Package smithy models the Smithy shape graph: namespace-qualified shape
// IDs, the closed set of shape variants, trait payloads, and the Model arena
// that holds them.
//
// Shapes reference one another exclusively through [ShapeID] values resolved
// against a [Model]; there are no direct pointers between shapes, which makes
// cyclic and shared subgraphs safe to hold and cheap to traverse.
//
// The package also decodes and encodes the Smithy JSON AST interchange
// format. It does not parse Smithy IDL source text; models are expected to
// arrive pre-built (from [DecodeAST] or assembled via [Model.AddShape]) and
// already validated.
package smithy
