package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/smithytools"
	"github.com/erraggy/smithytools/converter"
	"github.com/erraggy/smithytools/internal/mcpserver"
	"github.com/erraggy/smithytools/openapi"
	"github.com/erraggy/smithytools/smithy"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("smithytools v%s\n", smithytools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "import":
		if err := handleImport(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	target     string
	output     string
	service    string
	naming     string
	extension  string
	inline     bool
	asJSON     bool
	noWarnings bool
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.target, "t", "3.0", "target OpenAPI version (\"3.0\" or \"3.1\")")
	fs.StringVar(&flags.target, "target", "3.0", "target OpenAPI version (\"3.0\" or \"3.1\")")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.service, "service", "", "shape ID of the service to convert (default: the model's first service)")
	fs.StringVar(&flags.naming, "naming", "shortName", "component naming strategy (shortName, fullyQualified)")
	fs.StringVar(&flags.extension, "extension", "", "vendor-extension prefix for traits without an OpenAPI equivalent (default: x-smithy)")
	fs.BoolVar(&flags.inline, "inline", false, "inline named simple shapes and enums instead of registering components")
	fs.BoolVar(&flags.asJSON, "json", false, "emit JSON instead of YAML")
	fs.BoolVar(&flags.noWarnings, "no-info", false, "suppress informational messages")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: smithytools convert [flags] <model.json>\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Convert a Smithy JSON AST model to an OpenAPI document.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools convert model.json\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools convert -t 3.1 -o openapi.yaml model.json\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools convert --service example.weather#Weather model.json\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools convert --naming fullyQualified --json model.json\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nNotes:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Lossy constructs (unsupported traits, non-string map keys) are reported as issues\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Operations without a smithy.api#http trait are omitted with a warning\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Critical issues indicate constructs that could not be converted at all\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one model file")
	}

	modelPath := fs.Arg(0)
	data, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("reading model file: %w", err)
	}
	model, err := smithy.DecodeAST(data)
	if err != nil {
		return fmt.Errorf("decoding model: %w", err)
	}

	opts := []converter.Option{converter.WithModel(model)}
	if flags.service != "" {
		id, perr := smithy.ParseShapeID(flags.service)
		if perr != nil {
			return perr
		}
		opts = append(opts, converter.WithService(id))
	}
	opts = append(opts, converter.WithOpenAPIVersion(flags.target))
	switch flags.naming {
	case "shortName":
		opts = append(opts, converter.WithNamingStrategy(converter.NamingShortName))
	case "fullyQualified":
		opts = append(opts, converter.WithNamingStrategy(converter.NamingFullyQualified))
	default:
		return fmt.Errorf("invalid naming strategy %q (expected shortName or fullyQualified)", flags.naming)
	}
	if flags.inline {
		opts = append(opts, converter.WithInlineSimpleSchemas(true))
	}
	if flags.extension != "" {
		opts = append(opts, converter.WithExtensionNamespace(flags.extension))
	}
	if flags.noWarnings {
		opts = append(opts, converter.WithIncludeInfo(false))
	}

	startTime := time.Now()
	result, err := converter.ConvertWithOptions(opts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("converting model: %w", err)
	}

	// Results go to stderr so the document can be piped from stdout.
	fmt.Fprintf(os.Stderr, "Smithy to OpenAPI Converter\n")
	fmt.Fprintf(os.Stderr, "===========================\n\n")
	fmt.Fprintf(os.Stderr, "smithytools version: %s\n", smithytools.Version())
	fmt.Fprintf(os.Stderr, "Model: %s\n", modelPath)
	fmt.Fprintf(os.Stderr, "Service: %s\n", result.Service)
	fmt.Fprintf(os.Stderr, "Target Version: %s\n", result.TargetVersion)
	fmt.Fprintf(os.Stderr, "Paths: %d\n", len(result.Document.Paths))
	fmt.Fprintf(os.Stderr, "Total Time: %v\n\n", totalTime)

	printIssues(result.Issues)

	if result.Success {
		fmt.Fprintf(os.Stderr, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Fprintf(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Fprintln(os.Stderr)
	} else {
		fmt.Fprintf(os.Stderr, "✗ Conversion completed with %d critical issue(s)\n", result.CriticalCount)
	}

	var doc []byte
	if flags.asJSON {
		doc, err = result.Document.MarshalJSONIndent("", "  ")
	} else {
		doc, err = result.Document.MarshalYAML()
	}
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	if err := writeOutput(flags.output, doc); err != nil {
		return err
	}

	if !result.Success {
		os.Exit(1)
	}
	return nil
}

// importFlags contains flags for the import command
type importFlags struct {
	namespace  string
	output     string
	noWarnings bool
}

func setupImportFlags() (*flag.FlagSet, *importFlags) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	flags := &importFlags{}

	fs.StringVar(&flags.namespace, "n", "", "target Smithy namespace for generated shapes (required)")
	fs.StringVar(&flags.namespace, "namespace", "", "target Smithy namespace for generated shapes (required)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.noWarnings, "no-info", false, "suppress informational messages")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: smithytools import [flags] <openapi.yaml>\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Convert an OpenAPI document to a Smithy JSON AST model.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools import -n example.weather openapi.yaml\n")
		_, _ = fmt.Fprintf(fs.Output(), "  smithytools import -n com.example.api -o model.json openapi.json\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nNotes:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Component schemas become named shapes in the target namespace\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Operations become operation shapes with smithy.api#http traits\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Unresolvable $refs degrade to smithy.api#Document and are reported as errors\n")
	}

	return fs, flags
}

func handleImport(args []string) error {
	fs, flags := setupImportFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("import command requires exactly one document file")
	}

	if flags.namespace == "" {
		fs.Usage()
		return fmt.Errorf("target namespace is required (use -n or --namespace)")
	}

	docPath := fs.Arg(0)
	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("reading document file: %w", err)
	}
	doc, err := openapi.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	c := converter.New()
	c.IncludeInfo = !flags.noWarnings

	startTime := time.Now()
	result, err := c.ConvertDocument(doc, flags.namespace)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}

	fmt.Fprintf(os.Stderr, "OpenAPI to Smithy Converter\n")
	fmt.Fprintf(os.Stderr, "===========================\n\n")
	fmt.Fprintf(os.Stderr, "smithytools version: %s\n", smithytools.Version())
	fmt.Fprintf(os.Stderr, "Document: %s\n", docPath)
	fmt.Fprintf(os.Stderr, "Service: %s\n", result.Service)
	fmt.Fprintf(os.Stderr, "Shapes: %d\n", result.Model.Len())
	fmt.Fprintf(os.Stderr, "Total Time: %v\n\n", totalTime)

	printIssues(result.Issues)

	if result.Success {
		fmt.Fprintf(os.Stderr, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Fprintf(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Fprintln(os.Stderr)
	} else {
		fmt.Fprintf(os.Stderr, "✗ Conversion completed with %d critical issue(s)\n", result.CriticalCount)
	}

	ast, err := result.Model.MarshalASTIndent("", "  ")
	if err != nil {
		return fmt.Errorf("marshaling model: %w", err)
	}

	if err := writeOutput(flags.output, ast); err != nil {
		return err
	}

	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func printIssues(recorded []converter.ConversionIssue) {
	if len(recorded) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "Conversion Issues (%d):\n", len(recorded))
	for _, issue := range recorded {
		fmt.Fprintf(os.Stderr, "  %s\n", issue.String())
	}
	fmt.Fprintln(os.Stderr)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "\nOutput written to: %s\n", path)
	return nil
}

var commandNames = []string{"convert", "import", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`smithytools - Smithy / OpenAPI Conversion Tools

Usage:
  smithytools <command> [options]

Commands:
  convert     Convert a Smithy JSON AST model to an OpenAPI document
  import      Convert an OpenAPI document to a Smithy JSON AST model
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  smithytools convert model.json
  smithytools convert -t 3.1 -o openapi.yaml model.json
  smithytools import -n example.weather openapi.yaml
  smithytools mcp

Run 'smithytools <command> --help' for more information on a command.`)
}
