package mcptools

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/dusk-indust/outline/internal/export"
	"github.com/dusk-indust/outline/internal/extract"
	"github.com/dusk-indust/outline/internal/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// OutlineService holds the shared grammar registry used by MCP tool handlers.
// Grammars load lazily on first use and stay cached for the server lifetime.
type OutlineService struct {
	registry *extract.Registry
	gate     extract.AccessGate
}

// NewOutlineService creates an OutlineService. gate may be nil.
func NewOutlineService(registry *extract.Registry, gate extract.AccessGate) *OutlineService {
	return &OutlineService{registry: registry, gate: gate}
}

// ExtractFile outlines a single source file.
func (s *OutlineService) ExtractFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractFileInput,
) (*mcp.CallToolResult, ExtractFileOutput, error) {
	if input.Path == "" {
		return nil, ExtractFileOutput{}, fmt.Errorf("path is required")
	}

	coord := extract.NewCoordinator(s.registry, extract.CoordinatorConfig{
		MinLines: input.MinLines,
		Gate:     s.gate,
	})

	out := coord.ExtractFile(ctx, input.Path)
	switch out.Kind {
	case extract.OutcomeOK:
		return nil, ExtractFileOutput{
			Outline: export.FormatFile(out.Result),
			File: &export.FileExport{
				Path:        out.Result.Path,
				Language:    out.Result.Language,
				Definitions: out.Result.Definitions,
			},
		}, nil
	case extract.OutcomeSkipped:
		return nil, ExtractFileOutput{Outline: ""}, nil
	default:
		return nil, ExtractFileOutput{
			Failure: &export.FailureExport{Path: input.Path, Kind: out.Kind, Error: out.Err},
		}, nil
	}
}

// ExtractDirectory walks a directory and outlines every supported file.
func (s *OutlineService) ExtractDirectory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractDirectoryInput,
) (*mcp.CallToolResult, ExtractDirectoryOutput, error) {
	if input.Path == "" {
		return nil, ExtractDirectoryOutput{}, fmt.Errorf("path is required")
	}
	info, err := os.Stat(input.Path)
	if err != nil {
		return nil, ExtractDirectoryOutput{}, fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return nil, ExtractDirectoryOutput{}, fmt.Errorf("path is not a directory: %s", input.Path)
	}

	w, err := walker.New(input.IgnoreGlobs)
	if err != nil {
		return nil, ExtractDirectoryOutput{}, err
	}
	w.MaxFiles = input.MaxFiles

	coord := extract.NewCoordinator(s.registry, extract.CoordinatorConfig{
		MinLines: input.MinLines,
		Gate:     s.gate,
		Lister:   w,
	})

	outcomes, err := coord.ExtractDirectory(ctx, input.Path)
	if err != nil {
		return nil, ExtractDirectoryOutput{}, err
	}

	return nil, ExtractDirectoryOutput{
		Outline: export.FormatBatch(outcomes),
		Batch:   export.BuildBatchExport(input.Path, outcomes),
	}, nil
}

// ListLanguages reports every supported language in sorted order.
func (s *OutlineService) ListLanguages(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListLanguagesInput,
) (*mcp.CallToolResult, ListLanguagesOutput, error) {
	langs := extract.SupportedLanguages()
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, string(l))
	}
	sort.Strings(names)
	return nil, ListLanguagesOutput{Languages: names}, nil
}
