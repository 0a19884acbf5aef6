// Package render turns a stream of search results into the two output
// formats the CLI supports: a colorized text driver and a Markdown export.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Warning is a user-facing diagnostic: a path the coordinator could not
// fully process, and why.
type Warning struct {
	Title      string
	Message    string
	Files      []string
	Suggestion string
}

// NewWarningFromEvent builds a Warning from a coordinator warning event's
// path and reason.
func NewWarningFromEvent(path, reason string) Warning {
	return Warning{
		Title: reason,
		Files: []string{path},
	}
}

// Display writes a formatted, yellow-highlighted warning to out.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}
