package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
)

// WithPort sets the HTTP server port
func WithPort(port int) ServerOption {
	return func(c *serverConfig) {
		c.port = port
	}
}

// WithStateless sets whether the server should be stateless
func WithStateless(stateless bool) ServerOption {
	return func(c *serverConfig) {
		c.stateless = stateless
	}
}

// MCPHTTPServer wraps the HTTP server and its dependencies
type MCPHTTPServer struct {
	streamableServer *server.StreamableHTTPServer
	config           *serverConfig
}

// NewHTTPServer creates a new BioStudies MCP server for streamable HTTP
func NewHTTPServer(opts ...ServerOption) (*MCPHTTPServer, error) {
	// Set defaults
	config := defaultServerConfig

	// Apply options
	for _, opt := range opts {
		opt(&config)
	}

	s, err := newMCPServer(&config)
	if err != nil {
		return nil, err
	}

	streamableServer := server.NewStreamableHTTPServer(
		s,
		server.WithStateLess(config.stateless),
	)

	return &MCPHTTPServer{
		streamableServer: streamableServer,
		config:           &config,
	}, nil
}

// Router returns the routes served over HTTP: the MCP endpoint and a
// liveness probe.
func (m *MCPHTTPServer) Router() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/mcp", m.streamableServer)
	router.HandleFunc("/healthz", healthzHandler).Methods(http.MethodGet)
	return router
}

// Start starts the HTTP server and blocks until shutdown
func (m *MCPHTTPServer) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", m.config.port),
		Handler: m.Router(),
	}

	errC := make(chan error, 1)
	go func() {
		errC <- httpServer.ListenAndServe()
	}()

	m.config.logger.Info("Starting MCP server", "addr", httpServer.Addr)

	select {
	case <-ctx.Done():
		m.config.logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

// Port returns the configured port
func (m *MCPHTTPServer) Port() int {
	return m.config.port
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
