package swagger2mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/spec"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/biostudies/biostudies-mcp-server/pkg/biostudies"
)

const testOpenAPIDoc = `{
  "swagger": "2.0",
  "info": {"title": "BioStudies API", "version": "1.0"},
  "paths": {
    "/studies/{accession}/similar": {
      "get": {
        "operationId": "get_similar_studies",
        "description": "List studies similar to the given accession.",
        "tags": ["studies"],
        "parameters": [
          {"name": "accession", "in": "path", "required": true, "type": "string", "description": "The study accession"},
          {"name": "limit", "in": "query", "type": "integer", "description": "Maximum number of studies to return"}
        ]
      }
    },
    "/stats": {
      "get": {
        "operationId": "get_collection_stats",
        "summary": "Collection level statistics.",
        "tags": ["statistics"]
      },
      "delete": {
        "operationId": "delete_stats",
        "description": "Delete statistics."
      }
    }
  }
}`

func toolsByName(toolToHandlers []ToolToHandler) map[string]ToolToHandler {
	byName := make(map[string]ToolToHandler, len(toolToHandlers))
	for _, th := range toolToHandlers {
		byName[th.Tool.Name] = th
	}
	return byName
}

func parseTestDoc(t *testing.T) *spec.Swagger {
	t.Helper()
	swaggerSpec := &spec.Swagger{}
	if err := json.Unmarshal([]byte(testOpenAPIDoc), swaggerSpec); err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return swaggerSpec
}

func TestNewToolsFromURLBuildsGetOnlyTools(t *testing.T) {
	t.Parallel()

	docServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(testOpenAPIDoc))
	}))
	defer docServer.Close()

	cl := biostudies.NewClient("http://api.invalid")
	toolToHandlers, err := NewToolsFromURL(docServer.URL+"/openapi.json", "http://api.invalid", cl)
	if err != nil {
		t.Fatalf("failed to build tools: %v", err)
	}
	if len(toolToHandlers) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(toolToHandlers))
	}

	byName := toolsByName(toolToHandlers)
	if _, ok := byName["delete_stats"]; ok {
		t.Fatalf("non-GET operations must not become tools")
	}
	if _, ok := byName["get_collection_stats"]; !ok {
		t.Fatalf("missing get_collection_stats tool")
	}

	similar, ok := byName["get_similar_studies"]
	if !ok {
		t.Fatalf("missing get_similar_studies tool")
	}

	var schema struct {
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
		Required   []string       `json:"required"`
	}
	if err := json.Unmarshal(similar.Tool.RawInputSchema, &schema); err != nil {
		t.Fatalf("failed to unmarshal input schema: %v", err)
	}
	if schema.Type != "object" {
		t.Fatalf("unexpected schema type: %s", schema.Type)
	}
	if _, ok := schema.Properties["limit"]; !ok {
		t.Fatalf("expected limit in schema properties")
	}
	if len(schema.Required) != 1 || schema.Required[0] != "accession" {
		t.Fatalf("unexpected required parameters: %v", schema.Required)
	}
}

func TestGeneratedHandlerExecutesRequest(t *testing.T) {
	t.Parallel()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/studies/S-BSST1234/similar" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Fatalf("unexpected limit: %q", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"similar":[]}`))
	}))
	defer apiServer.Close()

	cl := biostudies.NewClient(apiServer.URL)
	toolToHandlers, err := NewToolsFromSpec(apiServer.URL, parseTestDoc(t), cl)
	if err != nil {
		t.Fatalf("failed to build tools: %v", err)
	}

	similar, ok := toolsByName(toolToHandlers)["get_similar_studies"]
	if !ok {
		t.Fatalf("missing get_similar_studies tool")
	}

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{"accession": "S-BSST1234", "limit": float64(5)}

	result, err := similar.Handler(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	content, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	want := "{\n  \"similar\": []\n}"
	if content.Text != want {
		t.Fatalf("unexpected result: got %q, want %q", content.Text, want)
	}
}

func TestGeneratedHandlerValidatesArguments(t *testing.T) {
	t.Parallel()

	apiServer := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Fatalf("request must not reach the API on invalid arguments: %s", r.URL.Path)
	}))
	defer apiServer.Close()

	cl := biostudies.NewClient(apiServer.URL)
	toolToHandlers, err := NewToolsFromSpec(apiServer.URL, parseTestDoc(t), cl)
	if err != nil {
		t.Fatalf("failed to build tools: %v", err)
	}

	similar, ok := toolsByName(toolToHandlers)["get_similar_studies"]
	if !ok {
		t.Fatalf("missing get_similar_studies tool")
	}

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{"limit": float64(5)}

	result, err := similar.Handler(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result for missing required accession")
	}
}

func TestWithAllowedTagsFiltersTools(t *testing.T) {
	t.Parallel()

	cl := biostudies.NewClient("http://api.invalid")
	toolToHandlers, err := NewToolsFromSpec("http://api.invalid", parseTestDoc(t), cl, WithAllowedTags([]string{"statistics"}))
	if err != nil {
		t.Fatalf("failed to build tools: %v", err)
	}
	if len(toolToHandlers) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(toolToHandlers))
	}
	if got := toolToHandlers[0].Tool.Name; got != "get_collection_stats" {
		t.Fatalf("unexpected tool: %s", got)
	}
}

func TestNewToolsFromURLRejectsBadDocument(t *testing.T) {
	t.Parallel()

	docServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer docServer.Close()

	cl := biostudies.NewClient("http://api.invalid")
	if _, err := NewToolsFromURL(docServer.URL, "http://api.invalid", cl); err == nil {
		t.Fatalf("expected error for unavailable document")
	}
}
