package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewOutlineMCPServer creates an MCP server with the outline tools registered.
func NewOutlineMCPServer(svc *OutlineService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "outline",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_file",
		Description: "Extract the structural definitions (functions, classes, methods, types, sections) of one source file as a line-range-bounded outline.",
	}, svc.ExtractFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_directory",
		Description: "Walk a directory, extract structural definitions from every supported source file, and return a navigable outline with per-file failure notes.",
	}, svc.ExtractDirectory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_languages",
		Description: "List every language the outline extractor supports, including fallback-parsed formats.",
	}, svc.ListLanguages)

	return server
}

// RunMCPServer starts an HTTP server exposing the outline MCP tools.
func RunMCPServer(ctx context.Context, svc *OutlineService, addr string) error {
	server := NewOutlineMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
