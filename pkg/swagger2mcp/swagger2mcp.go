// Package swagger2mcp turns the GET operations of a Swagger 2.0 document
// into MCP tools backed by the BioStudies request executor.
package swagger2mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biostudies/biostudies-mcp-server/pkg/biostudies"
	"github.com/biostudies/biostudies-mcp-server/pkg/params"
	"github.com/biostudies/biostudies-mcp-server/pkg/tools"
)

type client interface {
	Get(url string) (*http.Response, error)
	Execute(ctx context.Context, endpoint string, query url.Values) biostudies.Result
}

// ToolToHandler encapsulates a tool and its handler
type ToolToHandler struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

func fetchOpenAPISpec(cl client, url string) (*spec.Swagger, error) {
	resp, err := cl.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL, err: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status code: %d when fetching URL", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body, err: %w", err)
	}

	swaggerSpec := &spec.Swagger{}
	if err := json.Unmarshal(data, swaggerSpec); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document, err: %w", err)
	}

	err = spec.ExpandSpec(swaggerSpec, &spec.ExpandOptions{
		RelativeBase: "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand OpenAPI document, err: %w", err)
	}

	return swaggerSpec, nil
}

// createToolToHandlers maps every documented GET operation to a tool. The
// BioStudies API is read only, so other methods are not exposed.
func createToolToHandlers(apiURL string, cl client, swaggerSpec *spec.Swagger, allowedTags []string) ([]ToolToHandler, error) {
	if swaggerSpec == nil || swaggerSpec.Paths == nil {
		return nil, nil
	}

	var toolToHandlerSlice []ToolToHandler

	for path, pathItem := range swaggerSpec.Paths.Paths {
		operation := pathItem.Get
		if operation == nil {
			continue
		}
		if !hasAllowedTag(operation.Tags, allowedTags) {
			continue
		}
		toolToHandler, err := createToolToHandler(cl, apiURL, path, operation)
		if err != nil {
			return nil, err
		}
		toolToHandlerSlice = append(toolToHandlerSlice, toolToHandler)
	}

	return toolToHandlerSlice, nil
}

func createToolToHandler(cl client, apiURL, path string, operation *spec.Operation) (ToolToHandler, error) {
	toolName, err := getToolName(operation)
	if err != nil {
		return ToolToHandler{}, err
	}

	description, err := getDescription(operation)
	if err != nil {
		return ToolToHandler{}, err
	}

	inputSchema, err := inputSchemaFromOperation(operation)
	if err != nil {
		return ToolToHandler{}, err
	}
	tool := mcp.NewToolWithRawSchema(toolName, description, inputSchema)

	// Generated tools validate their arguments against the schema themselves,
	// since nothing upstream knows the document's parameter shapes.
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argumentsJSON, err := json.Marshal(request.GetArguments())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments, err: %w", err)
		}
		if err := tools.ValidateArguments(tool, argumentsJSON); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return makeAPICall(ctx, cl, request, apiURL, path, operation)
	}

	return ToolToHandler{
		Tool:    tool,
		Handler: handler,
	}, nil
}

func getToolName(operation *spec.Operation) (string, error) {
	if operation.ID != "" {
		return operation.ID, nil
	}
	// Fall back to the first tag for documents whose operations carry no ID.
	if len(operation.Tags) > 0 && operation.Tags[0] != "" {
		lower := strings.ToLower(operation.Tags[0])
		snakeCase := strings.ReplaceAll(lower, " ", "_")
		return snakeCase, nil
	}
	return "", fmt.Errorf("no operation id found for operation")
}

func getDescription(operation *spec.Operation) (string, error) {
	if operation.Description != "" {
		return operation.Description, nil
	} else if operation.Summary != "" {
		return operation.Summary, nil
	}
	return "", fmt.Errorf("no description found for operation")
}

func hasAllowedTag(tags []string, allowedTags []string) bool {
	if len(allowedTags) == 0 {
		return true
	}

	for _, tag := range tags {
		for _, allowedTag := range allowedTags {
			if tag == allowedTag {
				return true
			}
		}
	}
	return false
}

func inputSchemaFromOperation(operation *spec.Operation) ([]byte, error) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	properties := schema["properties"].(map[string]any)
	var required []string

	for _, param := range operation.Parameters {
		properties[param.Name] = map[string]any{
			"type":        param.Type,
			"description": param.Description,
		}
		if param.Required {
			required = append(required, param.Name)
		}
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema, err: %w", err)
	}

	return schemaJSON, nil
}

func makeAPICall(
	ctx context.Context,
	cl client,
	request mcp.CallToolRequest,
	apiURL, path string,
	operation *spec.Operation,
) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		args = map[string]any{}
	}

	query, err := queryFromRequest(request, operation.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s, err: %w", path, err)
	}

	result := cl.Execute(ctx, buildURL(apiURL, path, args), query)
	return mcp.NewToolResultText(result.Text()), nil
}

// queryFromRequest collects the query parameters an operation declares from
// the call arguments. Absent parameters are omitted rather than sent empty.
func queryFromRequest(request mcp.CallToolRequest, parameters []spec.Parameter) (url.Values, error) {
	query := url.Values{}
	args := request.GetArguments()

	for _, param := range parameters {
		if param.In != "query" {
			continue
		}
		if _, ok := args[param.Name]; !ok {
			continue
		}

		switch param.Type {
		case "integer", "number":
			value, err := params.Optional[float64](request, param.Name)
			if err != nil {
				return nil, err
			}
			query.Set(param.Name, fmt.Sprintf("%v", value))
		case "boolean":
			value, err := params.Optional[bool](request, param.Name)
			if err != nil {
				return nil, err
			}
			query.Set(param.Name, fmt.Sprintf("%t", value))
		default:
			value, err := params.Optional[string](request, param.Name)
			if err != nil {
				return nil, err
			}
			query.Set(param.Name, value)
		}
	}

	return query, nil
}

// buildURL builds the full URL with path parameters
func buildURL(apiURL, path string, args map[string]any) string {
	fullURL := apiURL + path

	// Replace path parameters
	for key, value := range args {
		placeholder := fmt.Sprintf("{%s}", key)
		if strings.Contains(fullURL, placeholder) {
			fullURL = strings.ReplaceAll(fullURL, placeholder, fmt.Sprintf("%v", value))
		}
	}
	return fullURL
}

type ToolsFromSpecOptions struct {
	AllowedTags []string
}

type NewToolsFromSpecOption func(*ToolsFromSpecOptions)

func WithAllowedTags(allowedTags []string) NewToolsFromSpecOption {
	return func(o *ToolsFromSpecOptions) {
		o.AllowedTags = allowedTags
	}
}

func NewToolsFromSpec(apiURL string, swaggerSpec *spec.Swagger, cl client, opts ...NewToolsFromSpecOption) ([]ToolToHandler, error) {
	var options ToolsFromSpecOptions
	for _, opt := range opts {
		opt(&options)
	}

	return createToolToHandlers(apiURL, cl, swaggerSpec, options.AllowedTags)
}

func NewToolsFromURL(url, apiURL string, cl client, opts ...NewToolsFromSpecOption) ([]ToolToHandler, error) {
	swaggerSpec, err := fetchOpenAPISpec(cl, url)
	if err != nil {
		return nil, err
	}

	return NewToolsFromSpec(apiURL, swaggerSpec, cl, opts...)
}
