package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/smithytools/converter"
	"github.com/erraggy/smithytools/openapi"
)

type importInput struct {
	Doc       docInput `json:"doc"                  jsonschema:"The OpenAPI document to convert (JSON or YAML)"`
	Namespace string   `json:"namespace"            jsonschema:"Target Smithy namespace for generated shapes (e.g. example.weather)"`
	Output    string   `json:"output,omitempty"     jsonschema:"File path to write the generated model. If omitted the model is returned inline."`
}

type importOutput struct {
	Service    string            `json:"service"`
	Success    bool              `json:"success"`
	IssueCount int               `json:"issue_count"`
	Issues     []conversionIssue `json:"issues,omitempty"`
	WrittenTo  string            `json:"written_to,omitempty"`
	Model      string            `json:"model,omitempty"`
}

func handleOpenAPIToSmithy(_ context.Context, _ *mcp.CallToolRequest, input importInput) (*mcp.CallToolResult, importOutput, error) {
	data, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), importOutput{}, nil
	}
	doc, err := openapi.ParseDocument(data)
	if err != nil {
		return errResult(err), importOutput{}, nil
	}

	result, err := converter.ConvertDocument(doc, input.Namespace)
	if err != nil {
		return errResult(err), importOutput{}, nil
	}

	output := importOutput{
		Service:    result.Service.String(),
		Success:    result.Success,
		IssueCount: len(result.Issues),
		Issues:     issueSummaries(result.Issues),
	}

	ast, err := result.Model.MarshalASTIndent("", "  ")
	if err != nil {
		return errResult(err), importOutput{}, nil
	}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, ast, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), importOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Model = string(ast)
	}
	return nil, output, nil
}
