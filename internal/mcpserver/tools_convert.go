package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/smithytools/converter"
	"github.com/erraggy/smithytools/smithy"
)

type convertInput struct {
	Model     docInput `json:"model"                jsonschema:"The Smithy JSON AST model to convert"`
	Service   string   `json:"service,omitempty"    jsonschema:"Shape ID of the service to convert (e.g. example.weather#Weather). Defaults to the model's first service."`
	Version   string   `json:"version,omitempty"    jsonschema:"Target OpenAPI version (3.0 or 3.1). Defaults to 3.0."`
	Naming    string   `json:"naming,omitempty"     jsonschema:"Component naming strategy: shortName or fullyQualified. Defaults to shortName."`
	Inline    bool     `json:"inline,omitempty"     jsonschema:"Inline named simple shapes and enums instead of registering components"`
	Extension string   `json:"extension,omitempty"  jsonschema:"Vendor-extension prefix for traits without an OpenAPI equivalent. Defaults to x-smithy."`
	Output    string   `json:"output,omitempty"     jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type conversionIssue struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

type convertOutput struct {
	Service       string            `json:"service"`
	TargetVersion string            `json:"target_version"`
	Success       bool              `json:"success"`
	IssueCount    int               `json:"issue_count"`
	Issues        []conversionIssue `json:"issues,omitempty"`
	WrittenTo     string            `json:"written_to,omitempty"`
	Document      string            `json:"document,omitempty"`
}

func handleSmithyToOpenAPI(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	data, err := input.Model.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	model, err := smithy.DecodeAST(data)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts := []converter.Option{converter.WithModel(model)}
	if input.Service != "" {
		id, perr := smithy.ParseShapeID(input.Service)
		if perr != nil {
			return errResult(perr), convertOutput{}, nil
		}
		opts = append(opts, converter.WithService(id))
	}
	if input.Version != "" {
		opts = append(opts, converter.WithOpenAPIVersion(input.Version))
	}
	if input.Naming != "" {
		strategy, perr := parseNamingStrategy(input.Naming)
		if perr != nil {
			return errResult(perr), convertOutput{}, nil
		}
		opts = append(opts, converter.WithNamingStrategy(strategy))
	}
	if input.Inline {
		opts = append(opts, converter.WithInlineSimpleSchemas(true))
	}
	if input.Extension != "" {
		opts = append(opts, converter.WithExtensionNamespace(input.Extension))
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Service:       result.Service.String(),
		TargetVersion: result.TargetVersion,
		Success:       result.Success,
		IssueCount:    len(result.Issues),
		Issues:        issueSummaries(result.Issues),
	}

	doc, err := result.Document.MarshalYAML()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, doc, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(doc)
	}
	return nil, output, nil
}

func parseNamingStrategy(s string) (converter.NamingStrategy, error) {
	switch s {
	case "shortName":
		return converter.NamingShortName, nil
	case "fullyQualified":
		return converter.NamingFullyQualified, nil
	}
	return 0, fmt.Errorf("invalid naming strategy %q: expected shortName or fullyQualified", s)
}

func issueSummaries(recorded []converter.ConversionIssue) []conversionIssue {
	out := makeSlice[conversionIssue](len(recorded))
	for _, issue := range recorded {
		out = append(out, conversionIssue{
			Severity: issue.Severity.String(),
			Kind:     string(issue.Kind),
			Location: issue.Location(),
			Message:  issue.Message,
		})
	}
	return out
}
