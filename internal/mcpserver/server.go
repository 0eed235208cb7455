// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes smithytools conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/smithytools"
)

const serverInstructions = `smithytools MCP server — converts Smithy models to OpenAPI documents and OpenAPI documents to Smithy models.

Tools:
- smithy_to_openapi: Smithy JSON AST in, OpenAPI 3.0/3.1 document out. Reports per-shape conversion issues.
- openapi_to_smithy: OpenAPI document in, Smithy JSON AST out. Synthesizes shapes into a caller-chosen namespace.

Inputs are provided inline (content) or as a file path (file). Conversions are lossy where the formats disagree; check the issues array in every result before trusting the output.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "smithytools", Version: smithytools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "smithy_to_openapi",
		Description: "Convert a Smithy JSON AST model to an OpenAPI document (3.0 or 3.1). Selects the model's first service unless service is set. Returns the document plus conversion issues with severity and shape locations. Lossy constructs (unsupported traits, non-string map keys, operations without HTTP bindings) are reported, not fatal.",
	}, handleSmithyToOpenAPI)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "openapi_to_smithy",
		Description: "Convert an OpenAPI document to a Smithy JSON AST model. All synthesized shapes are placed in the given namespace. Component schemas become named shapes, operations become operation shapes with smithy.api#http traits, and error responses become error structures. Returns the model plus conversion issues.",
	}, handleOpenAPIToSmithy)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
