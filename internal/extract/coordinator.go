package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Lister supplies candidate file paths for a directory, already filtered by
// ignore rules. Implementations live outside the extraction core.
type Lister interface {
	ListFiles(ctx context.Context, dir string) ([]string, error)
}

// AccessGate may veto a specific path before parsing. A veto causes the file
// to be skipped, not reported as an error.
type AccessGate interface {
	Allow(path string) bool
}

// CoordinatorConfig tunes extraction behavior.
type CoordinatorConfig struct {
	// MinLines is the minimum definition size; <= 0 selects DefaultMinLines.
	MinLines int
	// Workers bounds batch parallelism; <= 0 selects runtime.NumCPU.
	Workers int
	// Gate is the optional access-control collaborator.
	Gate AccessGate
	// Lister is the file enumeration collaborator used by ExtractDirectory.
	Lister Lister
}

// Coordinator orchestrates per-file and batch extraction. Every failure is
// caught at this boundary and converted to a tagged per-file outcome; nothing
// propagates to abort a batch.
type Coordinator struct {
	registry *Registry
	cfg      CoordinatorConfig
}

// NewCoordinator creates a Coordinator backed by the given grammar registry.
func NewCoordinator(registry *Registry, cfg CoordinatorConfig) *Coordinator {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Coordinator{registry: registry, cfg: cfg}
}

// ExtractFile extracts the definition outline of a single file.
func (c *Coordinator) ExtractFile(ctx context.Context, path string) Outcome {
	lang, ok := LanguageForPath(path)
	if !ok {
		return Outcome{Kind: OutcomeUnsupportedLanguage, Err: fmt.Sprintf("no grammar or fallback for %s", path)}
	}

	var entry *Entry
	if !IsFallback(lang) {
		loaded, failed := c.registry.EnsureLoaded([]Language{lang})
		if err := failed[lang]; err != nil {
			return loadFailureOutcome(err)
		}
		entry = loaded[lang]
		if entry == nil {
			return Outcome{Kind: OutcomeUnsupportedLanguage, Err: fmt.Sprintf("language %s not loadable", lang)}
		}
	}

	return c.extractWith(ctx, path, lang, entry)
}

// ExtractDirectory enumerates a directory through the configured Lister and
// extracts every candidate file. Grammar loading is amortized: one
// EnsureLoaded call covers the whole batch.
func (c *Coordinator) ExtractDirectory(ctx context.Context, dir string) (map[string]Outcome, error) {
	if c.cfg.Lister == nil {
		return nil, errors.New("no file lister configured")
	}
	paths, err := c.cfg.Lister.ListFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return c.ExtractBatch(ctx, paths), nil
}

// ExtractBatch extracts every path with per-file isolation. The result map
// has one entry per input path. Grammar load failures observed during this
// call are remembered for its duration only, so every file of a broken
// language fails fast without repeated load attempts; a later batch retries.
func (c *Coordinator) ExtractBatch(ctx context.Context, paths []string) map[string]Outcome {
	byLang := make(map[Language][]string)
	var grammarLangs []Language
	for _, path := range paths {
		lang, ok := LanguageForPath(path)
		if !ok {
			continue
		}
		if _, seen := byLang[lang]; !seen && !IsFallback(lang) {
			grammarLangs = append(grammarLangs, lang)
		}
		byLang[lang] = append(byLang[lang], path)
	}

	loaded, loadFailed := c.registry.EnsureLoaded(grammarLangs)

	outcomes := make([]Outcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)

	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = c.extractBatchFile(gctx, path, loaded, loadFailed)
			return nil // per-file failures become outcomes, never group errors
		})
	}
	_ = g.Wait()

	results := make(map[string]Outcome, len(paths))
	for i, path := range paths {
		results[path] = outcomes[i]
	}
	return results
}

// extractBatchFile resolves one file against the batch's pre-loaded grammars.
func (c *Coordinator) extractBatchFile(
	ctx context.Context,
	path string,
	loaded map[Language]*Entry,
	loadFailed map[Language]error,
) Outcome {
	lang, ok := LanguageForPath(path)
	if !ok {
		return Outcome{Kind: OutcomeUnsupportedLanguage, Err: fmt.Sprintf("no grammar or fallback for %s", path)}
	}

	var entry *Entry
	if !IsFallback(lang) {
		if err := loadFailed[lang]; err != nil {
			return loadFailureOutcome(err)
		}
		entry = loaded[lang]
		if entry == nil {
			return Outcome{Kind: OutcomeUnsupportedLanguage, Err: fmt.Sprintf("language %s not loadable", lang)}
		}
	}

	return c.extractWith(ctx, path, lang, entry)
}

// extractWith runs the grammar or fallback path for one file and converges
// both into the synthesizer. Panics from the C parsing layer are caught and
// reported as parse failures.
func (c *Coordinator) extractWith(ctx context.Context, path string, lang Language, entry *Entry) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("extract: panic processing %s: %v", path, rec)
			out = Outcome{Kind: OutcomeParseFailure, Err: fmt.Sprintf("panic: %v", rec)}
		}
	}()

	if c.cfg.Gate != nil && !c.cfg.Gate.Allow(path) {
		return Outcome{Kind: OutcomeSkipped}
	}
	if err := ctx.Err(); err != nil {
		return Outcome{Kind: OutcomeIOFailure, Err: err.Error()}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Kind: OutcomeIOFailure, Err: err.Error()}
	}

	var captures []Capture
	if IsFallback(lang) {
		captures = ScanHeadings(source)
		defs := Synthesize(captures, SplitLines(source), c.cfg.MinLines)
		return okOutcome(path, lang, defs)
	}

	tree, err := ParseTree(entry.Grammar, source)
	if err != nil {
		return Outcome{Kind: OutcomeParseFailure, Err: err.Error()}
	}
	defer tree.Close()

	captures = RunQuery(entry.Query, tree, source)
	defs := Synthesize(captures, SplitLines(source), c.cfg.MinLines)
	return okOutcome(path, lang, defs)
}

func okOutcome(path string, lang Language, defs []DefinitionRecord) Outcome {
	return Outcome{
		Kind: OutcomeOK,
		Result: &Result{
			Path:        path,
			Language:    lang,
			Definitions: defs,
		},
	}
}

// loadFailureOutcome maps a registry load error to its outcome kind.
func loadFailureOutcome(err error) Outcome {
	kind := OutcomeGrammarLoadFailure
	if errors.Is(err, ErrQueryCompile) {
		kind = OutcomeQueryFailure
	}
	return Outcome{Kind: kind, Err: err.Error()}
}
