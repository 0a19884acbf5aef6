package match

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/harrison/haybale/internal/search/pattern"
)

// LargeFileThreshold is the file size, in bytes, past which a regex
// content pattern is degraded to line-by-line matching rather than
// scanned as a whole multi-line buffer.
const LargeFileThreshold = 50 * 1024 * 1024

// TextContentSearcher matches a pattern against a file's decoded text,
// with UTF-8-then-Latin-1 decoding, line/context bookkeeping, and the
// large-file line-mode degradation rule.
type TextContentSearcher struct {
	finder pattern.Finder
	regex  bool
}

// NewTextContentSearcher builds a TextContentSearcher for expr.
func NewTextContentSearcher(expr *pattern.Expr, caseSensitive bool) *TextContentSearcher {
	return &TextContentSearcher{
		finder: pattern.NewFinder(expr, caseSensitive),
		regex:  expr.Kind == pattern.KindRegex,
	}
}

// Search decodes data and returns every ContentMatch found. degraded is
// true when a regex pattern was applied line-by-line because data exceeded
// LargeFileThreshold — the caller should emit a warning for that path.
func (s *TextContentSearcher) Search(data []byte) (matches []ContentMatch, degraded bool) {
	text := decode(data)
	lines := splitLines(text)

	if s.regex && len(data) <= LargeFileThreshold {
		return s.searchWholeText(text, lines), false
	}

	degraded = s.regex && len(data) > LargeFileThreshold
	return s.searchLineByLine(lines), degraded
}

// decode attempts a UTF-8 decode of data; on failure it falls back to the
// total Latin-1 (ISO-8859-1) codec.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func (s *TextContentSearcher) searchLineByLine(lines []line) []ContentMatch {
	var out []ContentMatch
	for _, ln := range lines {
		ranges := s.finder.FindMatches(ln.Text)
		if len(ranges) == 0 {
			continue
		}
		out = append(out, ContentMatch{
			LineNumber:    ln.Number,
			LineText:      ln.Text,
			Ranges:        ranges,
			ContextBefore: contextBefore(lines, ln.Number),
			ContextAfter:  contextAfter(lines, ln.Number),
		})
	}
	return out
}

func (s *TextContentSearcher) searchWholeText(text string, lines []line) []ContentMatch {
	found := s.finder.FindMatches(text)
	var out []ContentMatch
	for _, m := range found {
		startIdx := lineIndexForOffset(lines, m.Start)
		endOffset := m.End - 1
		if endOffset < m.Start {
			endOffset = m.Start
		}
		endIdx := lineIndexForOffset(lines, endOffset)

		startLine := lines[startIdx]
		rangeStart := m.Start - startLine.StartOffset
		rangeEnd := m.End - startLine.StartOffset
		if rangeEnd > len(startLine.Text) {
			rangeEnd = len(startLine.Text)
		}
		if rangeStart < 0 {
			rangeStart = 0
		}

		out = append(out, ContentMatch{
			LineNumber:    startLine.Number,
			LineText:      startLine.Text,
			Ranges:        []pattern.MatchRange{{Start: rangeStart, End: rangeEnd}},
			ContextBefore: contextBefore(lines, startLine.Number),
			ContextAfter:  contextAfter(lines, lines[endIdx].Number),
		})
	}
	return out
}
