package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/harrison/haybale/internal/search"
)

// MarkdownWriter renders a batch of SearchResults as a Markdown report:
// one "##" heading per file, matches in a fenced code block prefixed with
// their line number.
type MarkdownWriter struct {
	md goldmark.Markdown
}

// NewMarkdownWriter builds a MarkdownWriter.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{md: goldmark.New()}
}

// Render builds the Markdown document for results and validates it by
// round-tripping it through goldmark's own parser before returning it.
func (w *MarkdownWriter) Render(results []search.SearchResult) (string, error) {
	var b strings.Builder

	for _, res := range results {
		fmt.Fprintf(&b, "## %s\n\n", res.Path)

		if len(res.ContentMatches) == 0 {
			b.WriteString("Name match, no content matches.\n\n")
			continue
		}

		b.WriteString("```\n")
		for _, m := range res.ContentMatches {
			fmt.Fprintf(&b, "%d: %s\n", m.LineNumber, m.LineText)
		}
		b.WriteString("```\n\n")
	}

	doc := b.String()

	var discard bytes.Buffer
	if err := w.md.Convert([]byte(doc), &discard); err != nil {
		return "", fmt.Errorf("generated markdown failed validation: %w", err)
	}

	return doc, nil
}
