package extract

import (
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// languageSpec describes how one language is handled: either a grammar loader
// plus a tags query, or the fallback text parser. Adding a language is a data
// addition to this table, not new control flow.
type languageSpec struct {
	// load constructs the compiled grammar. Nil for fallback-only languages.
	load func() *tree_sitter.Language
	// query is the structural tags query compiled against the grammar.
	query string
	// fallback routes the language to the heading scanner instead of a grammar.
	fallback bool
}

// languageTable is the static registration table populated once at startup.
var languageTable = map[Language]languageSpec{
	LangGo: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_go.Language()) },
		query: goTagsQuery,
	},
	LangTypeScript: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()) },
		query: typescriptTagsQuery,
	},
	LangTSX: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()) },
		query: typescriptTagsQuery,
	},
	LangPython: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) },
		query: pythonTagsQuery,
	},
	LangRust: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_rust.Language()) },
		query: rustTagsQuery,
	},
	LangC: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_c.Language()) },
		query: cTagsQuery,
	},
	LangJava: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_java.Language()) },
		query: javaTagsQuery,
	},
	LangPHP: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()) },
		query: phpTagsQuery,
	},
	LangRuby: {
		load:  func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_ruby.Language()) },
		query: rubyTagsQuery,
	},
	LangMarkdown: {
		fallback: true,
	},
}

// extToLanguage maps file extensions to languages. Maintained alongside the
// language table; both must agree on the set of supported languages.
var extToLanguage = map[string]Language{
	".go":       LangGo,
	".ts":       LangTypeScript,
	".mts":      LangTypeScript,
	".tsx":      LangTSX,
	".py":       LangPython,
	".rs":       LangRust,
	".c":        LangC,
	".h":        LangC,
	".java":     LangJava,
	".php":      LangPHP,
	".rb":       LangRuby,
	".md":       LangMarkdown,
	".markdown": LangMarkdown,
}

// LanguageForPath resolves the language for a file path by extension.
// The second return is false when the extension is unsupported.
func LanguageForPath(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extToLanguage[ext]
	return lang, ok
}

// SupportedLanguages returns every registered language, including
// fallback-only ones.
func SupportedLanguages() []Language {
	langs := make([]Language, 0, len(languageTable))
	for l := range languageTable {
		langs = append(langs, l)
	}
	return langs
}

// IsFallback reports whether the language is handled by the heading scanner
// rather than a grammar.
func IsFallback(lang Language) bool {
	spec, ok := languageTable[lang]
	return ok && spec.fallback
}
