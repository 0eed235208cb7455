// Package converter converts Smithy models to OpenAPI documents and back.
//
// The forward direction walks a service shape's operation closure, translates
// every reachable data shape into a JSON Schema component, and assembles an
// OpenAPI 3.0 or 3.1 document from the operations' HTTP binding traits:
//
//	model, err := smithy.DecodeAST(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := converter.Convert(model, smithy.ShapeID{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := result.Document.MarshalYAML()
//
// The reverse direction reads a parsed OpenAPI document and synthesizes a
// Smithy model in a caller-supplied namespace:
//
//	result, err := converter.ConvertDocument(doc, "example.weather")
//
// Conversions are lossy where the formats disagree; rather than failing, the
// converter records what it dropped or approximated as issues on the result.
// A result with Success == false means data was lost (critical issues); check
// Issues for the details either way.
//
// Output is deterministic: converting the same input twice yields
// byte-identical documents. Component order follows the model's shape walk
// order, member order follows declaration order, and everything else is
// sorted.
package converter
