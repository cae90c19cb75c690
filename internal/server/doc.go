// Package server implements the MCP (Model Context Protocol) surface of the
// QR code server.
//
// Protocol handling is delegated to the official MCP Go SDK; this package
// assembles the server and registers what it exposes:
//
//   - generate_qr: tool that renders text as a PNG QR code and returns it as
//     base64 image content
//   - ui://qr-server/view.html: static HTML viewer resource that MCP hosts
//     embed to display tool results
//
// # Transports
//
// Two transports are supported. RunStdio serves the protocol over
// stdin/stdout for process-spawning hosts such as Claude Desktop. RunHTTP
// serves the streamable HTTP transport on a TCP listener, mounted at /mcp
// behind permissive CORS. HTTP mode is stateless: no session state is kept
// between requests, so instances can sit behind a load balancer without
// affinity.
//
// # Error Handling
//
// Tool handlers return ordinary Go errors. The SDK reports them as tool
// results flagged isError, so a malformed color argument never tears down
// the session.
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.RunStdio(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
