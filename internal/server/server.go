package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName is the protocol-level identifier, matching the authority
	// of the viewer resource URI.
	serverName = "qr-server"
	// serverTitle is the human-readable name hosts display.
	serverTitle = "QR Code Server"
)

// Server bundles the MCP server with its registered tools and resources.
type Server struct {
	mcp *mcp.Server
}

// New assembles a server: implementation metadata, the generate_qr tool and
// the viewer resource.
func New(version string) *Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Title:   serverTitle,
		Version: version,
	}, nil)

	registerTools(s)
	registerResources(s)

	return &Server{mcp: s}
}

// RunStdio serves the protocol over stdin/stdout until the client
// disconnects or ctx is canceled.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
