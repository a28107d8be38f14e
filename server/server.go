package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/biostudies/biostudies-mcp-server/pkg/biostudies"
	"github.com/biostudies/biostudies-mcp-server/pkg/swagger2mcp"
	"github.com/biostudies/biostudies-mcp-server/pkg/tools"
)

var (
	defaultServerConfig = serverConfig{
		apiURL:        biostudies.DefaultAPIURL,
		serverName:    "biostudies-mcp-server",
		serverVersion: "0.0.1",
		logger:        slog.Default(),
		// HTTP server options
		port:      8080,
		stateless: true,
	}
)

type Server interface {
	Start(ctx context.Context) error
}

type ServerType string

const (
	StdioServerType ServerType = "stdio"
	HTTPServerType  ServerType = "http"
)

func CreateServer(serverType ServerType, opts ...ServerOption) (Server, error) {
	switch serverType {
	case StdioServerType:
		return NewStdioServer(opts...)
	case HTTPServerType:
		return NewHTTPServer(opts...)
	default:
		return nil, fmt.Errorf("invalid server type: %s", serverType)
	}
}

// AddStudyTools registers the BioStudies tools
func AddStudyTools(s *server.MCPServer, client tools.Client) {
	s.AddTool(tools.GetStudyTool(client))
	s.AddTool(tools.GetStudyInfoTool(client))
	s.AddTool(tools.SearchStudiesTool(client))
}

// AddStudyResources registers the search field reference
func AddStudyResources(s *server.MCPServer) {
	s.AddResource(tools.SearchFieldsResource, tools.SearchFieldsResourceHandler())
}

// newMCPServer builds the MCP server shared by both transports. Extra tools
// derived from an OpenAPI document are added when one is configured.
func newMCPServer(config *serverConfig) (*server.MCPServer, error) {
	client := biostudies.NewClient(config.apiURL, biostudies.WithUserAgent(config.effectiveUserAgent()))

	s := server.NewMCPServer(config.serverName, config.serverVersion)
	AddStudyTools(s, client)
	AddStudyResources(s)

	if config.openAPIDocURL != "" {
		toolToHandlers, err := swagger2mcp.NewToolsFromURL(
			config.openAPIDocURL,
			config.apiURL,
			client,
			swagger2mcp.WithAllowedTags(config.allowedTags),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create tools from URL: %w", err)
		}
		for _, toolToHandler := range toolToHandlers {
			s.AddTool(toolToHandler.Tool, toolToHandler.Handler)
		}
	}

	return s, nil
}

// serverConfig holds internal configuration
type serverConfig struct {
	apiURL        string
	openAPIDocURL string
	serverName    string
	serverVersion string
	userAgent     string
	allowedTags   []string
	logger        *slog.Logger

	// HTTP server options
	port      int
	stateless bool
}

func (c *serverConfig) effectiveUserAgent() string {
	if c.userAgent != "" {
		return c.userAgent
	}
	return c.serverName + "/" + c.serverVersion
}

// ServerOption configures the MCP server
type ServerOption func(*serverConfig)

// WithAPIURL sets the BioStudies API URL
func WithAPIURL(url string) ServerOption {
	return func(c *serverConfig) {
		c.apiURL = url
	}
}

// WithOpenAPIDocURL sets the OpenAPI document extra tools are derived from
func WithOpenAPIDocURL(url string) ServerOption {
	return func(c *serverConfig) {
		c.openAPIDocURL = url
	}
}

// WithAllowedTags restricts OpenAPI derived tools to operations with the given tags
func WithAllowedTags(tags []string) ServerOption {
	return func(c *serverConfig) {
		c.allowedTags = tags
	}
}

// WithServerName sets the server name
func WithServerName(name string) ServerOption {
	return func(c *serverConfig) {
		c.serverName = name
	}
}

// WithServerVersion sets the server version
func WithServerVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.serverVersion = version
	}
}

// WithUserAgent sets the User-Agent reported to the BioStudies API
func WithUserAgent(userAgent string) ServerOption {
	return func(c *serverConfig) {
		c.userAgent = userAgent
	}
}

func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = logger
	}
}
