// Package search is haybale's public search API: it turns a raw,
// CLI-facing QueryInput into a validated SearchQuery and drives the
// coordinator to produce a stream of SearchEvents.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/harrison/haybale/internal/search/coordinator"
	"github.com/harrison/haybale/internal/search/filter"
	"github.com/harrison/haybale/internal/search/pattern"
)

// Re-exported so callers only need to import this one package for the
// core search API.
type (
	SearchOptions = coordinator.SearchOptions
	SearchQuery   = coordinator.SearchQuery
	SearchResult  = coordinator.SearchResult
	SearchEvent   = coordinator.SearchEvent
)

const (
	EventResult  = coordinator.EventResult
	EventWarning = coordinator.EventWarning
)

// QueryInput is the raw, string-typed form of a search request as it
// arrives from a CLI flag set or a config file, before pattern and
// size/date parsing.
type QueryInput struct {
	Root                 string
	NamePattern          string
	ContentPattern       string
	CaseSensitiveContent bool
	MinSize              string
	MaxSize              string
	ModifiedAfter        string
	ModifiedBefore       string
	SearchBinaries       bool
	IncludeHidden        bool
	MaxDepth             *int
}

// BuildQuery parses in into a SearchQuery, surfacing every pattern, size
// and date parse error as a single wrapped error before any traversal
// starts (the QueryParse error kind).
func BuildQuery(in QueryInput, now time.Time) (*SearchQuery, error) {
	if in.Root == "" {
		return nil, fmt.Errorf("query: root is required")
	}

	var namePattern *pattern.Expr
	if in.NamePattern != "" {
		expr, err := pattern.Parse(in.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("query: name pattern: %w", err)
		}
		namePattern = expr
	}

	var contentPattern *pattern.Expr
	if in.ContentPattern != "" {
		expr, err := pattern.Parse(in.ContentPattern)
		if err != nil {
			return nil, fmt.Errorf("query: content pattern: %w", err)
		}
		contentPattern = expr
	}

	var minSize, maxSize *int64
	if in.MinSize != "" {
		n, err := filter.ParseSize(in.MinSize)
		if err != nil {
			return nil, fmt.Errorf("query: min size: %w", err)
		}
		minSize = &n
	}
	if in.MaxSize != "" {
		n, err := filter.ParseSize(in.MaxSize)
		if err != nil {
			return nil, fmt.Errorf("query: max size: %w", err)
		}
		maxSize = &n
	}
	if minSize != nil && maxSize != nil && *minSize > *maxSize {
		return nil, fmt.Errorf("query: min size %d exceeds max size %d", *minSize, *maxSize)
	}

	var modifiedAfter, modifiedBefore *time.Time
	if in.ModifiedAfter != "" {
		d, err := filter.ParseDate(in.ModifiedAfter, now)
		if err != nil {
			return nil, fmt.Errorf("query: modified after: %w", err)
		}
		modifiedAfter = &d
	}
	if in.ModifiedBefore != "" {
		d, err := filter.ParseDate(in.ModifiedBefore, now)
		if err != nil {
			return nil, fmt.Errorf("query: modified before: %w", err)
		}
		modifiedBefore = &d
	}
	if modifiedAfter != nil && modifiedBefore != nil && modifiedAfter.After(*modifiedBefore) {
		return nil, fmt.Errorf("query: modified-after is later than modified-before")
	}

	if in.MaxDepth != nil && *in.MaxDepth < 0 {
		return nil, fmt.Errorf("query: max depth must be non-negative")
	}

	return &SearchQuery{
		Root:           in.Root,
		NamePattern:    namePattern,
		ContentPattern: contentPattern,
		Options: SearchOptions{
			CaseSensitiveContent: in.CaseSensitiveContent,
			MinSizeBytes:         minSize,
			MaxSizeBytes:         maxSize,
			ModifiedAfter:        modifiedAfter,
			ModifiedBefore:       modifiedBefore,
			SearchBinaries:       in.SearchBinaries,
			IncludeHidden:        in.IncludeHidden,
			MaxDepth:             in.MaxDepth,
		},
	}, nil
}

// Search is the core's single entrypoint: it drives query to completion
// against the filesystem and streams the results. The caller cancels by
// cancelling ctx.
func Search(ctx context.Context, query *SearchQuery) <-chan SearchEvent {
	return coordinator.New(query).Search(ctx)
}
