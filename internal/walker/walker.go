// Package walker enumerates candidate source files for batch extraction.
// It is the file-listing collaborator injected into the extraction
// coordinator; ignore filtering happens here so the core never sees
// excluded paths.
package walker

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/dusk-indust/outline/internal/extract"
)

var _ extract.Lister = (*Walker)(nil)

// defaultSkipDirs are directory names pruned on every walk.
var defaultSkipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	"target":       true,
	"dist":         true,
}

// Walker lists files under a root directory, pruning well-known build and
// VCS directories plus any caller-supplied ignore globs.
// It is the Lister collaborator of the extraction coordinator.
type Walker struct {
	ignores []glob.Glob
	// MaxFiles bounds the candidate list; 0 means unbounded.
	MaxFiles int
}

// New compiles the given ignore glob patterns. Patterns match against paths
// relative to the walk root, with '/' separators.
func New(ignoreGlobs []string) (*Walker, error) {
	w := &Walker{}
	for _, pattern := range ignoreGlobs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		w.ignores = append(w.ignores, g)
	}
	return w, nil
}

// ListFiles walks dir and returns every regular file not excluded by the
// skip list or ignore globs. The context is checked between directory
// entries so a canceled walk stops promptly.
func (w *Walker) ListFiles(ctx context.Context, dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // inaccessible entries are skipped, not fatal
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		rel, rerr := filepath.Rel(dir, path)
		if rerr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if defaultSkipDirs[d.Name()] || w.ignored(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || w.ignored(rel) {
			return nil
		}

		files = append(files, path)
		if w.MaxFiles > 0 && len(files) >= w.MaxFiles {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ignored reports whether any ignore glob matches the relative path.
func (w *Walker) ignored(rel string) bool {
	if rel == "." {
		return false
	}
	for _, g := range w.ignores {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
