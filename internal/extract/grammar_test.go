package extract

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// extractFixture runs the full pipeline on a fixture under testdata/.
// Tests run from internal/extract/, so the relative path is ../../testdata/...
func extractFixture(t *testing.T, relPath string) *Result {
	t.Helper()
	path := "../../" + relPath
	_, err := os.Stat(path)
	require.NoError(t, err, "fixture %s", relPath)

	c := NewCoordinator(NewRegistry(), CoordinatorConfig{})
	out := c.ExtractFile(context.Background(), path)
	require.Equal(t, OutcomeOK, out.Kind, "extracting %s: %s", relPath, out.Err)
	require.NotNil(t, out.Result)
	return out.Result
}

// findDef returns the first record whose label matches, or nil.
func findDef(defs []DefinitionRecord, label string) *DefinitionRecord {
	for i := range defs {
		if defs[i].Label == label {
			return &defs[i]
		}
	}
	return nil
}

// assertWellFormed checks the structural invariants every outline must hold:
// valid inclusive ranges, non-decreasing order, no duplicate ranges.
func assertWellFormed(t *testing.T, defs []DefinitionRecord) {
	t.Helper()
	seen := make(map[[2]int]bool)
	for i, d := range defs {
		assert.LessOrEqual(t, d.StartLine, d.EndLine, "record %d", i)
		assert.GreaterOrEqual(t, d.EndLine-d.StartLine+1, DefaultMinLines, "record %d", i)
		if i > 0 {
			assert.LessOrEqual(t, defs[i-1].StartLine, d.StartLine, "record %d out of order", i)
		}
		key := [2]int{d.StartLine, d.EndLine}
		assert.False(t, seen[key], "duplicate range %v", key)
		seen[key] = true
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestExtract_GoFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/go_project/model.go")
	assert.Equal(t, LangGo, res.Language)
	assertWellFormed(t, res.Definitions)

	sensor := findDef(res.Definitions, "type Sensor struct {")
	require.NotNil(t, sensor, "Sensor struct should be captured")
	assert.Equal(t, 3, sensor.StartLine)
	assert.Equal(t, 7, sensor.EndLine)

	store := findDef(res.Definitions, "type Store interface {")
	require.NotNil(t, store, "Store interface should be captured")
	assert.Equal(t, 10, store.StartLine)
	assert.Equal(t, 13, store.EndLine)

	assert.Nil(t, findDef(res.Definitions, "func defaultSensor(id string) *Sensor {"),
		"3-line function is under the size threshold")
}

func TestExtract_GoMethods(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/go_project/service.go")
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "func (r *Recorder) Record(id string, value float64) error {"))
	assert.NotNil(t, findDef(res.Definitions, "func (r *Recorder) Latest(id string) (float64, error) {"))
	assert.Nil(t, findDef(res.Definitions, "func NewRecorder(store Store) *Recorder {"),
		"3-line constructor is under the size threshold")
}

func TestExtract_PythonFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/python_app/models.py")
	assert.Equal(t, LangPython, res.Language)
	assertWellFormed(t, res.Definitions)

	account := findDef(res.Definitions, "class Account:")
	require.NotNil(t, account)
	assert.Equal(t, 3, account.StartLine)

	assert.NotNil(t, findDef(res.Definitions, "def deposit(self, amount):"),
		"4-line method should be captured")
	assert.Nil(t, findDef(res.Definitions, "def short():"),
		"2-line function is under the size threshold")
}

func TestExtract_TypeScriptFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/ts_app/service.ts")
	assert.Equal(t, LangTypeScript, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "export interface Task {"))

	// The exported class matches both the bare pattern and the
	// export-statement wrapper; duplicates must collapse to one record.
	var classCount int
	for _, d := range res.Definitions {
		if d.Label == "export class TaskService {" {
			classCount++
		}
	}
	assert.Equal(t, 1, classCount)

	assert.NotNil(t, findDef(res.Definitions, "complete(id: string): void {"),
		"method definitions inside the class should be captured")
	assert.NotNil(t, findDef(res.Definitions, "const formatTask = (task: Task): string => {"),
		"arrow-function consts should be captured")
}

func TestExtract_TSXFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/ts_app/widget.tsx")
	assert.Equal(t, LangTSX, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "interface WidgetProps {"))
	assert.NotNil(t, findDef(res.Definitions, "export class Widget {"))
	assert.NotNil(t, findDef(res.Definitions, "render() {"),
		"methods with JSX bodies should still be captured")
}

func TestExtract_RustFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/rust_app/lib.rs")
	assert.Equal(t, LangRust, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "pub struct Job {"))
	assert.NotNil(t, findDef(res.Definitions, "impl Job {"))
	assert.NotNil(t, findDef(res.Definitions, "pub fn retry(&mut self) -> bool {"))
	assert.NotNil(t, findDef(res.Definitions, "pub trait Runner {"))
}

func TestExtract_CFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/clang/queue.c")
	assert.Equal(t, LangC, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "struct queue {"))
	assert.NotNil(t, findDef(res.Definitions, "int queue_push(struct queue *q, int v) {"))
}

func TestExtract_JavaFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/java_app/TaskQueue.java")
	assert.Equal(t, LangJava, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "public class TaskQueue {"))
	assert.NotNil(t, findDef(res.Definitions, "public void push(String task) {"))
	assert.Nil(t, findDef(res.Definitions, "public String pop() {"),
		"3-line method is under the size threshold")
}

func TestExtract_PHPFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/php_app/mailer.php")
	assert.Equal(t, LangPHP, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "class Mailer"))
	assert.NotNil(t, findDef(res.Definitions, "public function send($to, $subject, $body)"))
}

func TestExtract_RubyFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/ruby_app/scheduler.rb")
	assert.Equal(t, LangRuby, res.Language)
	assertWellFormed(t, res.Definitions)

	assert.NotNil(t, findDef(res.Definitions, "class Scheduler"))
	assert.NotNil(t, findDef(res.Definitions, "def initialize(interval)"))
	assert.NotNil(t, findDef(res.Definitions, "def add(job)"))
	assert.Nil(t, findDef(res.Definitions, "def self.default"),
		"3-line singleton method is under the size threshold")
}

func TestExtract_MarkdownFixture(t *testing.T) {
	res := extractFixture(t, "testdata/fixtures/docs/guide.md")
	assert.Equal(t, LangMarkdown, res.Language)
	assertWellFormed(t, res.Definitions)

	guide := findDef(res.Definitions, "# Guide")
	require.NotNil(t, guide)
	assert.Equal(t, 0, guide.StartLine)
	assert.Equal(t, 12, guide.EndLine)

	assert.NotNil(t, findDef(res.Definitions, "## Install"))
	assert.NotNil(t, findDef(res.Definitions, "Usage"), "setext heading should be captured")
	assert.NotNil(t, findDef(res.Definitions, "# Reference"))
}
