package extract

import (
	"errors"
	"fmt"
	"log"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Sentinel errors distinguishing the two ways a language can fail to load.
var (
	// ErrGrammarInit means the grammar binary is present but failed to
	// initialize.
	ErrGrammarInit = errors.New("grammar failed to initialize")
	// ErrQueryCompile means the tags query is incompatible with the loaded
	// grammar version.
	ErrQueryCompile = errors.New("tags query failed to compile")
)

// Entry pairs a compiled grammar with its compiled tags query. Entries are
// immutable after load and safe for concurrent read-only use.
type Entry struct {
	Grammar *tree_sitter.Language
	Query   *tree_sitter.Query
}

// Registry lazily loads and caches compiled grammars and queries per
// language. Loaded entries live for the process lifetime and are never
// evicted. Load failures are NOT cached here; callers running a batch keep
// their own per-batch failure set so a later call may retry.
type Registry struct {
	mu      sync.Mutex
	entries map[Language]*Entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Language]*Entry),
	}
}

// EnsureLoaded loads every requested language that is not yet cached and
// returns the loaded entries plus a per-language error map for the ones that
// failed. Unknown and fallback-only languages are silently omitted (logged).
// A failure for one language never affects the others in the same call.
// Previously loaded languages are returned from cache in O(1).
func (r *Registry) EnsureLoaded(langs []Language) (map[Language]*Entry, map[Language]error) {
	loaded := make(map[Language]*Entry, len(langs))
	failed := make(map[Language]error)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, lang := range langs {
		if entry, ok := r.entries[lang]; ok {
			loaded[lang] = entry
			continue
		}
		if failed[lang] != nil {
			continue // duplicate of a language that already failed this call
		}

		spec, ok := languageTable[lang]
		if !ok || spec.fallback || spec.load == nil {
			log.Printf("registry: no grammar for language %q, skipping", lang)
			continue
		}

		entry, err := loadLanguage(lang, spec)
		if err != nil {
			log.Printf("registry: loading %q failed: %v", lang, err)
			failed[lang] = err
			continue
		}

		r.entries[lang] = entry
		loaded[lang] = entry
	}

	return loaded, failed
}

// loadLanguage compiles the grammar and its tags query. Grammar constructors
// cross into C, so panics are converted to ErrGrammarInit.
func loadLanguage(lang Language, spec languageSpec) (entry *Entry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			entry = nil
			err = fmt.Errorf("%w: %s: %v", ErrGrammarInit, lang, rec)
		}
	}()

	grammar := spec.load()
	if grammar == nil {
		return nil, fmt.Errorf("%w: %s", ErrGrammarInit, lang)
	}

	query, qerr := tree_sitter.NewQuery(grammar, spec.query)
	if qerr != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrQueryCompile, lang, qerr.Message)
	}

	return &Entry{Grammar: grammar, Query: query}, nil
}
