package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/haybale/internal/search/pattern"
)

func mustParse(t *testing.T, raw string) *pattern.Expr {
	t.Helper()
	expr, err := pattern.Parse(raw)
	require.NoError(t, err)
	return expr
}

func TestNameMatcherCaseInsensitive(t *testing.T) {
	m := NewNameMatcher(mustParse(t, "*.HTML;*.htm"))
	assert.True(t, m.Match("/tmp/a/index.html"))
	assert.True(t, m.Match("/tmp/a/index.HTM"))
	assert.False(t, m.Match("/tmp/a/index.txt"))
}

func TestNameMatcherBasenameOnly(t *testing.T) {
	m := NewNameMatcher(mustParse(t, "a*"))
	assert.True(t, m.Match("/some/dir/apple.txt"))
	assert.False(t, m.Match("/apple/dir/banana.txt"))
}

func TestTextContentSearcherSimpleMatch(t *testing.T) {
	s := NewTextContentSearcher(mustParse(t, "r:(?i)hello"), false)
	data := []byte("one\nhello world\nthree\n")
	matches, degraded := s.Search(data)
	require.False(t, degraded)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, 2, m.LineNumber)
	assert.Equal(t, "hello world", m.LineText)
	require.Len(t, m.Ranges, 1)
	assert.Equal(t, pattern.MatchRange{Start: 0, End: 5}, m.Ranges[0])
	require.Len(t, m.ContextBefore, 1)
	assert.Equal(t, "one", m.ContextBefore[0].Text)
	require.Len(t, m.ContextAfter, 1)
	assert.Equal(t, "three", m.ContextAfter[0].Text)
}

func TestTextContentSearcherLargeFileDegrades(t *testing.T) {
	big := make([]byte, LargeFileThreshold+1)
	for i := range big {
		big[i] = 'x'
	}
	s := NewTextContentSearcher(mustParse(t, "r:(?s)foo.*bar"), false)
	_, degraded := s.Search(big)
	assert.True(t, degraded)
}

func TestTextContentSearcherWildcardPerLine(t *testing.T) {
	s := NewTextContentSearcher(mustParse(t, "hello*"), false)
	data := []byte("hello world\nsomething else\n")
	matches, _ := s.Search(data)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].LineNumber)
}

func TestTextContentSearcherLatin1Fallback(t *testing.T) {
	// 0xE9 starts a three-byte UTF-8 sequence that '\n' does not continue,
	// so the buffer is invalid UTF-8, but it decodes to 'é' under Latin-1.
	data := []byte{'c', 'a', 'f', 0xE9, '\n'}
	s := NewTextContentSearcher(mustParse(t, "r:caf"), false)
	matches, _ := s.Search(data)
	require.Len(t, matches, 1)
	assert.Equal(t, "café", matches[0].LineText)
}

func TestBinaryContentSearcherOrdinalLineNumbers(t *testing.T) {
	s := NewBinaryContentSearcher(mustParse(t, "r:WORLD"), false)
	data := []byte("\x00HELLO\x00\x00WORLD\x00")
	matches := s.Search(data)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].LineNumber)
	assert.Equal(t, "WORLD", matches[0].LineText)
}
