package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"
)

// ValidateArguments checks a raw tools/call arguments document against the
// tool's input schema. Tools built with a raw schema are validated against
// that schema directly.
func ValidateArguments(tool mcp.Tool, argumentsJSON []byte) error {
	var schemaLoader gojsonschema.JSONLoader
	if len(tool.RawInputSchema) > 0 {
		schemaLoader = gojsonschema.NewBytesLoader(tool.RawInputSchema)
	} else {
		schemaLoader = gojsonschema.NewGoLoader(tool.InputSchema)
	}
	documentLoader := gojsonschema.NewBytesLoader(argumentsJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("arguments validation failed: %s", strings.Join(errs, ", "))
}
