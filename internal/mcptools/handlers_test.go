package mcptools

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/outline/internal/extract"
)

const goSource = `package sample

func Alpha() int {
	a := 1
	a++
	return a
}
`

func newService() *OutlineService {
	return NewOutlineService(extract.NewRegistry(), nil)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractFileTool(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.go", goSource)

	_, out, err := newService().ExtractFile(context.Background(), nil, ExtractFileInput{Path: path})
	require.NoError(t, err)
	require.NotNil(t, out.File)
	assert.Nil(t, out.Failure)
	assert.Contains(t, out.Outline, "3--7 | func Alpha() int {")
	require.Len(t, out.File.Definitions, 1)
}

func TestExtractFileTool_EmptyPath(t *testing.T) {
	_, _, err := newService().ExtractFile(context.Background(), nil, ExtractFileInput{})
	assert.Error(t, err)
}

func TestExtractFileTool_Failure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.go")

	_, out, err := newService().ExtractFile(context.Background(), nil, ExtractFileInput{Path: missing})
	require.NoError(t, err, "per-file failures surface as tagged outputs, not handler errors")
	require.NotNil(t, out.Failure)
	assert.Equal(t, extract.OutcomeIOFailure, out.Failure.Kind)
	assert.Nil(t, out.File)
}

func TestExtractDirectoryTool(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", goSource)
	writeFile(t, dir, "notes.md", "# Top\none\ntwo\nthree\n")
	writeFile(t, dir, "skip_test.go", goSource)

	_, out, err := newService().ExtractDirectory(context.Background(), nil, ExtractDirectoryInput{
		Path:        dir,
		IgnoreGlobs: []string{"*_test.go"},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Batch)
	assert.Len(t, out.Batch.Files, 2, "ignored files never enter the batch")
	assert.Contains(t, out.Outline, "func Alpha() int {")
	assert.Contains(t, out.Outline, "# Top")
}

func TestExtractDirectoryTool_NotADirectory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.go", goSource)

	_, _, err := newService().ExtractDirectory(context.Background(), nil, ExtractDirectoryInput{Path: path})
	assert.Error(t, err)
}

func TestListLanguagesTool(t *testing.T) {
	_, out, err := newService().ListLanguages(context.Background(), nil, ListLanguagesInput{})
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(out.Languages))
	assert.Contains(t, out.Languages, "go")
	assert.Contains(t, out.Languages, "markdown")
}
