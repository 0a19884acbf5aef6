package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWildcardSingleAlternative(t *testing.T) {
	expr, err := Parse("*.go")
	require.NoError(t, err)
	assert.Equal(t, KindWildcard, expr.Kind)
	require.Len(t, expr.Alternatives, 1)
	assert.Equal(t, []Segment{{Star: true}, {Literal: ".go"}}, expr.Alternatives[0].Segments)
}

func TestParseWildcardAlternation(t *testing.T) {
	expr, err := Parse("*.go;*.md")
	require.NoError(t, err)
	require.Len(t, expr.Alternatives, 2)
	assert.Equal(t, []Segment{{Star: true}, {Literal: ".md"}}, expr.Alternatives[1].Segments)
}

func TestParseWildcardEscapes(t *testing.T) {
	expr, err := Parse(`foo\*bar`)
	require.NoError(t, err)
	require.Len(t, expr.Alternatives, 1)
	assert.Equal(t, []Segment{{Literal: "foo*bar"}}, expr.Alternatives[0].Segments)
}

func TestParseWildcardEmptyAlternativeError(t *testing.T) {
	_, err := Parse("*.go;;*.md")
	assert.Error(t, err)
}

func TestParseWildcardUnknownEscapeError(t *testing.T) {
	_, err := Parse(`foo\qbar`)
	assert.Error(t, err)
}

func TestParseRegex(t *testing.T) {
	expr, err := Parse("r:^foo.*bar$")
	require.NoError(t, err)
	assert.Equal(t, KindRegex, expr.Kind)
	require.NotNil(t, expr.Regex)
	assert.True(t, expr.Regex.MatchString("fooXXXbar"))
}

func TestParseRegexInvalid(t *testing.T) {
	_, err := Parse("r:(unterminated")
	assert.Error(t, err)
}

func TestParseEscapedRIsWildcard(t *testing.T) {
	expr, err := Parse(`\r:literal`)
	require.NoError(t, err)
	assert.Equal(t, KindWildcard, expr.Kind)
	require.Len(t, expr.Alternatives, 1)
	assert.Equal(t, []Segment{{Literal: "r:literal"}}, expr.Alternatives[0].Segments)
}

func TestWildcardFinderCaseInsensitive(t *testing.T) {
	expr, err := Parse("Foo*.TXT")
	require.NoError(t, err)
	finder := NewFinder(expr, false)

	assert.NotEmpty(t, finder.FindMatches("foobar.txt"))
	assert.Empty(t, finder.FindMatches("foobar.md"))
}

func TestWildcardFinderCaseSensitive(t *testing.T) {
	expr, err := Parse("Foo*.txt")
	require.NoError(t, err)
	finder := NewFinder(expr, true)

	assert.Empty(t, finder.FindMatches("foobar.txt"))
	assert.NotEmpty(t, finder.FindMatches("Foobar.txt"))
}

func TestWildcardFinderAlternationUnion(t *testing.T) {
	expr, err := Parse("*.go;*.md")
	require.NoError(t, err)
	finder := NewFinder(expr, true)

	assert.NotEmpty(t, finder.FindMatches("readme.md"))
	assert.NotEmpty(t, finder.FindMatches("main.go"))
	assert.Empty(t, finder.FindMatches("main.py"))
}

func TestRegexFinderNonOverlapping(t *testing.T) {
	expr, err := Parse("r:ab")
	require.NoError(t, err)
	finder := NewFinder(expr, false)

	matches := finder.FindMatches("ababab")
	require.Len(t, matches, 3)
	assert.Equal(t, MatchRange{Start: 0, End: 2}, matches[0])
	assert.Equal(t, MatchRange{Start: 2, End: 4}, matches[1])
	assert.Equal(t, MatchRange{Start: 4, End: 6}, matches[2])
}

func TestRegexFinderNoMatch(t *testing.T) {
	expr, err := Parse("r:xyz")
	require.NoError(t, err)
	finder := NewFinder(expr, false)

	assert.Empty(t, finder.FindMatches("abcabc"))
}
