// Package match binds a pattern finder to a source — a file's basename, its
// decoded text content, or the printable strings extracted from a binary —
// and produces the content matches a coordinator can report.
package match

import "github.com/harrison/haybale/internal/search/pattern"

// ContextLine is one line of context surrounding a ContentMatch.
type ContextLine struct {
	LineNumber int
	Text       string
}

// ContentMatch is one matched region within a file: the line the match
// starts on, that line's text, the matched ranges within it, and up to two
// lines of context on either side.
type ContentMatch struct {
	LineNumber    int
	LineText      string
	Ranges        []pattern.MatchRange
	ContextBefore []ContextLine
	ContextAfter  []ContextLine
}
