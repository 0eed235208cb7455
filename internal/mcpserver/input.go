package mcpserver

import (
	"fmt"
	"os"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve returns the raw document bytes for an input.
func (d docInput) resolve() ([]byte, error) {
	switch {
	case d.File != "" && d.Content != "":
		return nil, fmt.Errorf("provide file or content, not both")
	case d.File != "":
		data, err := os.ReadFile(d.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	case d.Content != "":
		return []byte(d.Content), nil
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}
