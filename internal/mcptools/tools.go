package mcptools

import "github.com/dusk-indust/outline/internal/export"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ExtractFileInput is the input for the extract_file MCP tool.
type ExtractFileInput struct {
	Path     string `json:"path" jsonschema:"absolute path of the source file to outline"`
	MinLines int    `json:"minLines,omitempty" jsonschema:"minimum definition size in lines (default: 4)"`
}

// ExtractFileOutput is the result of the extract_file MCP tool.
type ExtractFileOutput struct {
	Outline string                `json:"outline"`
	File    *export.FileExport    `json:"file,omitempty"`
	Failure *export.FailureExport `json:"failure,omitempty"`
}

// ExtractDirectoryInput is the input for the extract_directory MCP tool.
type ExtractDirectoryInput struct {
	Path        string   `json:"path" jsonschema:"absolute path of the directory to outline"`
	IgnoreGlobs []string `json:"ignoreGlobs,omitempty" jsonschema:"glob patterns to exclude from the walk (e.g. **/testdata/**)"`
	MinLines    int      `json:"minLines,omitempty" jsonschema:"minimum definition size in lines (default: 4)"`
	MaxFiles    int      `json:"maxFiles,omitempty" jsonschema:"cap on the number of files walked (default: unbounded)"`
}

// ExtractDirectoryOutput is the result of the extract_directory MCP tool.
type ExtractDirectoryOutput struct {
	Outline string              `json:"outline"`
	Batch   *export.BatchExport `json:"batch"`
}

// ListLanguagesInput is the input for the list_languages MCP tool.
type ListLanguagesInput struct{}

// ListLanguagesOutput is the result of the list_languages MCP tool.
type ListLanguagesOutput struct {
	Languages []string `json:"languages"`
}
