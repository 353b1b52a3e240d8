package extract

import "strings"

// The fallback text parser recognizes markdown-style headings in formats
// lacking a formal grammar and emits capture-compatible output, so the
// synthesizer runs unchanged on both paths.
//
// Two heading styles are recognized:
//   - ATX: a run of '#' followed by whitespace and text; level = run length.
//   - Setext: a text line immediately followed by an underline of repeated
//     '=' (level 1) or '-' (level 2).
//
// A heading's section runs from the heading line to the line before the next
// heading of equal or shallower level, or end of file.

// heading is one recognized heading line.
type heading struct {
	line  int
	level int
}

// ScanHeadings scans source and emits one "definition.section" capture per
// heading, spanning the heading's whole section.
func ScanHeadings(source []byte) []Capture {
	lines := SplitLines(source)
	headings := collectHeadings(lines)

	lastLine := len(lines) - 1
	captures := make([]Capture, 0, len(headings))
	for i, h := range headings {
		end := lastLine
		for _, next := range headings[i+1:] {
			if next.level <= h.level {
				end = next.line - 1
				break
			}
		}
		captures = append(captures, Capture{
			Span: Span{StartLine: uint(h.line), EndLine: uint(end)},
			Name: "definition.section",
		})
	}
	return captures
}

// collectHeadings finds every ATX and setext heading. A line consumed as a
// setext underline is never itself a heading.
func collectHeadings(lines []string) []heading {
	var headings []heading
	underlines := make(map[int]bool)

	for i, line := range lines {
		if underlines[i] {
			continue
		}

		if level, ok := atxLevel(line); ok {
			headings = append(headings, heading{line: i, level: level})
			continue
		}

		// Setext: this line is plain text and the next is an underline run.
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i+1 < len(lines) {
			if level, ok := setextLevel(lines[i+1]); ok {
				underlines[i+1] = true
				headings = append(headings, heading{line: i, level: level})
			}
		}
	}
	return headings
}

// atxLevel reports the heading level of an ATX line ("## Title"), if any.
func atxLevel(line string) (int, bool) {
	run := 0
	for run < len(line) && line[run] == '#' {
		run++
	}
	if run == 0 || run > 6 || run >= len(line) {
		return 0, false
	}
	rest := line[run:]
	if rest[0] != ' ' && rest[0] != '\t' {
		return 0, false
	}
	if strings.TrimSpace(rest) == "" {
		return 0, false
	}
	return run, true
}

// setextLevel reports the heading level selected by an underline run:
// '=' selects level 1, '-' selects level 2.
func setextLevel(line string) (int, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 {
		return 0, false
	}
	ch := trimmed[0]
	if ch != '=' && ch != '-' {
		return 0, false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return 0, false
		}
	}
	if ch == '=' {
		return 1, true
	}
	return 2, true
}
