// Package smithytools provides bidirectional conversion between Smithy models
// and OpenAPI Specification (OAS) documents.
//
// smithytools translates the Smithy service-definition model (a graph of typed
// shapes annotated with traits) to and from the OpenAPI 3.x document model.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - smithy: the Smithy shape-graph model, shape identifiers, traits, and
//     Smithy JSON AST decoding/encoding
//   - openapi: the OpenAPI 3.0/3.1 document object model
//   - converter: bidirectional conversion between the two, with diagnostics
//
// # Quick Start
//
// Convert a Smithy model to an OpenAPI document:
//
//	import (
//		"github.com/erraggy/smithytools/converter"
//		"github.com/erraggy/smithytools/smithy"
//	)
//
//	model, err := smithy.DecodeAST(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := converter.Convert(model, smithy.ShapeID{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//	out, _ := result.Document.MarshalYAML()
//
// Convert an OpenAPI document back into Smithy shapes:
//
//	doc, err := openapi.ParseDocument(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := converter.ConvertDocument(doc, "example.weather")
//
// # Diagnostics
//
// Conversion never aborts on lossy or unsupported constructs; every such case
// is recorded as an issue with a severity and kind, and the caller receives
// both the (possibly partial) output and the full issue list. Only a
// structurally corrupt input graph (a shape ID referenced but absent from the
// model) terminates a run early.
package smithytools
