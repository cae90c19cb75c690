package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/qr-code-mcp/internal/config"
	"github.com/ironsheep/qr-code-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("qr-code-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout carries the MCP protocol in
	// stdio mode)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.LogLevel == "debug" {
		log.Printf("QR Code MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(Version)

	if hasStdioFlag(os.Args[1:]) {
		if err := srv.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	fmt.Printf("QR Code Server listening on http://%s:%d/mcp\n", cfg.Host, cfg.Port)
	if err := srv.RunHTTP(ctx, cfg.Addr()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// hasStdioFlag reports whether --stdio appears anywhere on the command line.
func hasStdioFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--stdio" {
			return true
		}
	}
	return false
}

func printHelp() {
	fmt.Println("qr-code-mcp - MCP server that renders QR codes as PNG images")
	fmt.Println()
	fmt.Println("Usage: qr-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --stdio          Serve MCP over stdin/stdout (Claude Desktop mode)")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  HOST=0.0.0.0              HTTP listen host")
	fmt.Println("  PORT=3001                 HTTP listen port")
	fmt.Println("  QR_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Without --stdio the server exposes the streamable HTTP transport on")
	fmt.Println("http://HOST:PORT/mcp with permissive CORS.")
}
