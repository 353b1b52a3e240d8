package extract

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMinLines is the minimum number of lines a definition must span to
// appear in the outline. Shorter declarations add no outline value.
const DefaultMinLines = 4

// inlineMarkupPattern matches a complete inline markup element on a single
// line, e.g. "<span>x</span>". Block-level queries in markup-hosting grammars
// can spuriously match such fragments.
var inlineMarkupPattern = regexp.MustCompile(`^<[A-Za-z][^>]*>.*</[A-Za-z][^>]*>\s*$`)

// LooksLikeInlineMarkup is the exclusion heuristic applied to candidates that
// were not confirmed by an identifier capture. It is approximate policy, not
// a hard contract, and may be replaced by callers with their own predicate.
var LooksLikeInlineMarkup = func(line string) bool {
	return inlineMarkupPattern.MatchString(line)
}

// nameCaptureMarker identifies identifier captures within the two-tier
// capture naming convention.
const nameCaptureMarker = "name.definition"

// Synthesize transforms raw captures into the final ordered definition list.
// sourceLines are the file's lines split on newline; minLines <= 0 selects
// DefaultMinLines. Returns nil when no qualifying definitions remain, which
// callers treat as "no definitions", distinct from an extraction error.
//
// The pipeline is deterministic and runs in a fixed order: filter to
// definition captures, resolve spans (identifier captures widen to their
// parent declaration), drop spans under minLines, sort by start line (stable),
// drop exact duplicate line ranges, apply the inline-markup exclusion to
// unconfirmed candidates, then label each record with the trimmed source text
// of its first line. All line numbers stay 0-based here; the +1 shift happens
// only at the serialization boundary.
func Synthesize(captures []Capture, sourceLines []string, minLines int) []DefinitionRecord {
	if minLines <= 0 {
		minLines = DefaultMinLines
	}

	type candidate struct {
		start, end int
		fromName   bool
	}

	var candidates []candidate
	for _, capt := range captures {
		if !strings.Contains(capt.Name, "definition") {
			continue
		}

		span := capt.Span
		fromName := strings.Contains(capt.Name, nameCaptureMarker)
		if fromName && capt.node != nil {
			if parent, ok := capt.node.ParentRange(); ok {
				span = parent
			}
		}

		start := int(span.StartLine)
		end := int(span.EndLine)
		if end-start+1 < minLines {
			continue
		}

		candidates = append(candidates, candidate{start: start, end: end, fromName: fromName})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	type lineRange struct{ start, end int }
	seen := make(map[lineRange]bool, len(candidates))

	var records []DefinitionRecord
	for _, c := range candidates {
		key := lineRange{c.start, c.end}
		if seen[key] {
			continue
		}
		seen[key] = true

		label := ""
		if c.start < len(sourceLines) {
			label = strings.TrimSpace(sourceLines[c.start])
		}

		if !c.fromName && LooksLikeInlineMarkup(label) {
			continue
		}

		records = append(records, DefinitionRecord{
			StartLine: c.start,
			EndLine:   c.end,
			Label:     label,
		})
	}

	return records
}

// SplitLines splits source bytes into lines for labeling. A trailing newline
// does not produce a phantom final line beyond what editors display.
func SplitLines(source []byte) []string {
	return strings.Split(string(source), "\n")
}
