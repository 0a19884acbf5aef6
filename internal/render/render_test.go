package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/haybale/internal/search"
	"github.com/harrison/haybale/internal/search/match"
	"github.com/harrison/haybale/internal/search/pattern"
)

func TestWarningDisplay(t *testing.T) {
	var buf bytes.Buffer
	w := NewWarningFromEvent("/tmp/loop", "symlink cycle")
	w.Display(&buf)

	out := buf.String()
	assert.Contains(t, out, "symlink cycle")
	assert.Contains(t, out, "/tmp/loop")
	assert.Contains(t, out, "\x1b[33m")
}

func TestTextWriterUncolored(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, false)

	tw.WriteResult(search.SearchResult{
		Path: "/tmp/notes.txt",
		ContentMatches: []match.ContentMatch{
			{LineNumber: 2, LineText: "hello world", Ranges: []pattern.MatchRange{{Start: 0, End: 5}}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "/tmp/notes.txt")
	assert.Contains(t, out, "2.  hello world")
	assert.NotContains(t, out, "\x1b[")
}

func TestTextWriterColoredHighlightsRanges(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, true)

	tw.WriteResult(search.SearchResult{
		Path: "/tmp/notes.txt",
		ContentMatches: []match.ContentMatch{
			{LineNumber: 1, LineText: "hello world", Ranges: []pattern.MatchRange{{Start: 0, End: 5}}},
		},
	})

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestMarkdownWriterRendersAndValidates(t *testing.T) {
	mw := NewMarkdownWriter()

	doc, err := mw.Render([]search.SearchResult{
		{
			Path: "/tmp/notes.txt",
			ContentMatches: []match.ContentMatch{
				{LineNumber: 2, LineText: "hello world"},
			},
		},
		{Path: "/tmp/readme.md"},
	})

	require.NoError(t, err)
	assert.Contains(t, doc, "## /tmp/notes.txt")
	assert.Contains(t, doc, "2: hello world")
	assert.Contains(t, doc, "## /tmp/readme.md")
	assert.Contains(t, doc, "no content matches")
}
