package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/harrison/haybale/internal/search"
	"github.com/harrison/haybale/internal/search/match"
	"github.com/harrison/haybale/internal/search/pattern"
)

// TextWriter renders SearchResults in haybale's default text format:
// the path on its own line, matches indented beneath it, colorized when
// the driver was built with color enabled.
type TextWriter struct {
	w     io.Writer
	color bool
}

// NewTextWriter builds a TextWriter writing to w.
func NewTextWriter(w io.Writer, colorEnabled bool) *TextWriter {
	return &TextWriter{w: w, color: colorEnabled}
}

// WriteResult writes one file's path and its matches, followed by a blank
// line separating it from the next file.
func (t *TextWriter) WriteResult(result search.SearchResult) {
	path := result.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if t.color {
		bold := color.New(color.Bold)
		bold.EnableColor()
		fmt.Fprintln(t.w, bold.Sprint(path))
	} else {
		fmt.Fprintln(t.w, path)
	}

	width := lineNumberWidth(result.ContentMatches)
	for _, m := range result.ContentMatches {
		numStr := fmt.Sprintf("%*d", width, m.LineNumber)
		text := m.LineText
		if t.color {
			faint := color.New(color.Faint)
			faint.EnableColor()
			numStr = faint.Sprint(numStr)
			text = highlightRanges(text, m.Ranges)
		}
		fmt.Fprintf(t.w, "  %s.  %s\n", numStr, text)
	}

	fmt.Fprintln(t.w)
}

// WriteWarning writes a Warning to the diagnostic writer given, which the
// CLI keeps separate from the result writer per the "warnings go to the
// diagnostic channel, never the result channel" contract.
func WriteWarning(diagnostics io.Writer, w Warning) {
	w.Display(diagnostics)
}

// lineNumberWidth returns the number of digits in the largest line number
// among matches, so the driver can right-align the column.
func lineNumberWidth(matches []match.ContentMatch) int {
	width := 1
	for _, m := range matches {
		if w := len(strconv.Itoa(m.LineNumber)); w > width {
			width = w
		}
	}
	return width
}

func highlightRanges(text string, ranges []pattern.MatchRange) string {
	if len(ranges) == 0 {
		return text
	}

	highlight := color.New(color.FgBlack, color.BgYellow)
	highlight.EnableColor()
	var out []byte
	last := 0
	for _, r := range ranges {
		if r.Start < last || r.Start > len(text) || r.End > len(text) || r.End < r.Start {
			continue
		}
		out = append(out, text[last:r.Start]...)
		out = append(out, []byte(highlight.Sprint(text[r.Start:r.End]))...)
		last = r.End
	}
	out = append(out, text[last:]...)
	return string(out)
}
