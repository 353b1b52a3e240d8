package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dusk-indust/outline/internal/extract"
)

// BatchExport is the top-level JSON export structure for a batch run.
type BatchExport struct {
	Root       string          `json:"root,omitempty"`
	ExportedAt string          `json:"exportedAt"`
	Files      []FileExport    `json:"files"`
	Failures   []FailureExport `json:"failures,omitempty"`
	Summary    map[string]int  `json:"summary"`
}

// FileExport describes one successfully extracted file.
type FileExport struct {
	Path        string                     `json:"path"`
	Language    extract.Language           `json:"language"`
	Definitions []extract.DefinitionRecord `json:"definitions"`
}

// FailureExport describes one file that produced a tagged failure outcome.
type FailureExport struct {
	Path  string              `json:"path"`
	Kind  extract.OutcomeKind `json:"kind"`
	Error string              `json:"error,omitempty"`
}

// BuildBatchExport converts a batch outcome map into the JSON export shape,
// in deterministic path order.
func BuildBatchExport(root string, outcomes map[string]extract.Outcome) *BatchExport {
	paths := make([]string, 0, len(outcomes))
	for path := range outcomes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	exp := &BatchExport{
		Root:       root,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:    make(map[string]int),
	}

	for _, path := range paths {
		out := outcomes[path]
		exp.Summary[string(out.Kind)]++
		switch out.Kind {
		case extract.OutcomeOK:
			exp.Files = append(exp.Files, FileExport{
				Path:        path,
				Language:    out.Result.Language,
				Definitions: out.Result.Definitions,
			})
		case extract.OutcomeSkipped:
			// vetoed paths are neither results nor failures
		default:
			exp.Failures = append(exp.Failures, FailureExport{
				Path:  path,
				Kind:  out.Kind,
				Error: out.Err,
			})
		}
	}
	return exp
}

// MarshalBatch renders the batch export as indented JSON.
func MarshalBatch(root string, outcomes map[string]extract.Outcome) ([]byte, error) {
	exp := BuildBatchExport(root, outcomes)
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal batch export: %w", err)
	}
	return data, nil
}
