// Package coordinator drives the recursive directory walk that ties the
// pattern, binary, match and filter packages together into a streamed
// sequence of search events.
package coordinator

import (
	"time"

	"github.com/harrison/haybale/internal/search/match"
	"github.com/harrison/haybale/internal/search/pattern"
)

// SearchOptions bundles every filter/behavior toggle that isn't a pattern
// string itself.
type SearchOptions struct {
	CaseSensitiveContent bool
	MinSizeBytes         *int64
	MaxSizeBytes         *int64
	ModifiedAfter        *time.Time
	ModifiedBefore       *time.Time
	SearchBinaries       bool
	IncludeHidden        bool
	MaxDepth             *int
}

// SearchQuery is a complete, already-parsed search request.
type SearchQuery struct {
	Root           string
	NamePattern    *pattern.Expr
	ContentPattern *pattern.Expr
	Options        SearchOptions
}

// SearchResult is one matching file: its path and, when a content pattern
// drove the match, the content matches that qualified it.
type SearchResult struct {
	Path           string
	ContentMatches []match.ContentMatch
}

// EventKind tags which variant of SearchEvent is populated.
type EventKind int

const (
	// EventResult marks a SearchEvent carrying a SearchResult.
	EventResult EventKind = iota
	// EventWarning marks a SearchEvent carrying a diagnostic.
	EventWarning
)

// SearchEvent is one element of the coordinator's output stream: either a
// matching file or a diagnostic about a path the coordinator could not
// fully process.
type SearchEvent struct {
	Kind    EventKind
	Result  SearchResult
	Path    string
	Reason  string
}

func resultEvent(r SearchResult) SearchEvent {
	return SearchEvent{Kind: EventResult, Result: r}
}

func warningEvent(path, reason string) SearchEvent {
	return SearchEvent{Kind: EventWarning, Path: path, Reason: reason}
}
