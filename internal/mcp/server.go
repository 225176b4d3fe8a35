// ABOUTME: MCP server setup for the healthai tools.
// ABOUTME: Wraps the MCP server with the evaluator, catalog, and symptom checker.
package mcp

import (
	"context"

	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/symptoms"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with the evaluation components.
type Server struct {
	mcpServer *mcp.Server
	catalog   *catalog.Catalog
	evaluator *evaluator.Evaluator
	checker   *symptoms.Checker
	logger    *zap.Logger
}

// NewServer creates a new MCP server. The checker must share cat.
func NewServer(cat *catalog.Catalog, eval *evaluator.Evaluator, checker *symptoms.Checker, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "healthai",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		catalog:   cat,
		evaluator: eval,
		checker:   checker,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
