/*
Package text provides the diagnostic-facing source-text utilities the chart
engine itself does not need: locating the line/column a chart.Node's span
falls on, and rendering a rustc-style annotated excerpt around it. These are
consumers of a parse, not part of the engine proper.
*/
package text

import (
	"sort"
)

// Pos is a line/column position within an Input, both zero-based.
type Pos struct {
	Line int
	Col  int
}

// Input wraps source text with a precomputed newline index, so that byte
// offsets (as used by ladle.Span and chart.Node token indices mapped back to
// source) can be translated to line/column positions and back to line text
// in O(log n).
type Input struct {
	path  string
	text  string
	lines []int // byte offset of each newline in text
}

// New wraps text with no associated path.
func New(text string) *Input {
	return &Input{text: text, lines: findNewlines(text)}
}

// NewWithPath wraps text, recording path for use in diagnostic headers.
func NewWithPath(text, path string) *Input {
	return &Input{path: path, text: text, lines: findNewlines(text)}
}

func findNewlines(text string) []int {
	var lines []int
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, i)
		}
	}
	return lines
}

// String returns the full wrapped text.
func (in *Input) String() string {
	return in.text
}

func (in *Input) lineStart(line int) int {
	if line == 0 {
		return 0
	}
	return in.lines[line-1] + 1
}

func (in *Input) lineEnd(line int) int {
	if line >= len(in.lines) {
		return len(in.text)
	}
	return in.lines[line]
}

// LineText returns the text of the given zero-based line, without its
// trailing newline.
func (in *Input) LineText(line int) string {
	return in.text[in.lineStart(line):in.lineEnd(line)]
}

// Pos translates a byte offset into text into a line/column position, via
// binary search over the newline index.
func (in *Input) Pos(offset int) Pos {
	line := sort.Search(len(in.lines), func(i int) bool {
		return in.lines[i] >= offset
	})
	return Pos{Line: line, Col: offset - in.lineStart(line)}
}

func (in *Input) hasPath() (string, bool) {
	return in.path, in.path != ""
}
