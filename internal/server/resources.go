package server

import (
	"context"
	_ "embed"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// viewURI is the fixed identifier hosts use to fetch the viewer document.
	viewURI = "ui://qr-server/view.html"
	// viewMIMEType marks the document as an MCP app view.
	viewMIMEType = "text/html;profile=mcp-app"
)

// cspResourceDomains lists every external domain the viewer loads content
// from. Hosts block anything not declared here.
var cspResourceDomains = []string{"https://unpkg.com"}

//go:embed view.html
var viewHTML string

// registerResources adds every resource this server exposes.
func registerResources(s *mcp.Server) {
	s.AddResource(viewResource(), handleViewResource)
}

func viewResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         viewURI,
		Name:        "view",
		Description: "View HTML resource with CSP metadata for external dependencies.",
		MIMEType:    viewMIMEType,
		Meta: mcp.Meta{
			"ui": map[string]any{
				"csp": map[string]any{"resourceDomains": cspResourceDomains},
			},
		},
	}
}

// handleViewResource serves the embedded document. Reads are idempotent:
// every call returns identical bytes.
func handleViewResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: viewURI, MIMEType: viewMIMEType, Text: viewHTML},
		},
	}, nil
}
