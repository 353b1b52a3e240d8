package extract

// --- Enums ---

// Language identifies a programming language with a registered grammar or
// fallback parser.
type Language string

const (
	LangGo         Language = "go"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangC          Language = "c"
	LangJava       Language = "java"
	LangPHP        Language = "php"
	LangRuby       Language = "ruby"
	LangMarkdown   Language = "markdown"
)

// OutcomeKind tags the per-file result variant produced by the coordinator.
type OutcomeKind string

const (
	OutcomeOK                  OutcomeKind = "ok"
	OutcomeSkipped             OutcomeKind = "skipped"
	OutcomeUnsupportedLanguage OutcomeKind = "unsupported_language"
	OutcomeGrammarLoadFailure  OutcomeKind = "grammar_load_failure"
	OutcomeParseFailure        OutcomeKind = "parse_failure"
	OutcomeQueryFailure        OutcomeKind = "query_execution_failure"
	OutcomeIOFailure           OutcomeKind = "io_failure"
)

// --- Models ---

// Span is a line/byte range within one source file. Rows are 0-based.
type Span struct {
	StartLine uint
	EndLine   uint
	StartByte uint
	EndByte   uint
}

// Capture is one (node, tag) pair produced by running a structural query
// against a syntax tree, or synthesized by the fallback text parser.
type Capture struct {
	Span Span
	// Name is the capture tag. Definition-spanning captures are named
	// "definition.<kind>"; identifier captures are "name.definition.<kind>".
	Name string
	// node is the captured syntax node. It is nil for fallback captures,
	// whose spans are already resolved.
	node nodeRef
}

// DefinitionRecord is one synthesized outline entry. StartLine and EndLine
// are 0-based and inclusive; StartLine <= EndLine always holds. Serialization
// to 1-based bounds happens only at the output boundary (internal/export).
type DefinitionRecord struct {
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Label     string `json:"label"`
}

// Result holds the ordered definition list for one file. Records are
// non-decreasing by StartLine and free of exact-duplicate line-range pairs.
// A file that parsed cleanly but yielded no qualifying definitions produces
// a nil Definitions slice, distinguishable from an extraction error.
type Result struct {
	Path        string             `json:"path"`
	Language    Language           `json:"language"`
	Definitions []DefinitionRecord `json:"definitions"`
}

// Outcome is the per-file result variant returned by batch extraction:
// either a Result or a tagged failure. Skipped files (access-gate veto)
// carry neither.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Result *Result     `json:"result,omitempty"`
	Err    string      `json:"error,omitempty"`
}
