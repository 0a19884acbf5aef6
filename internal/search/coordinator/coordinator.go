package coordinator

import (
	"context"
	"os"

	"github.com/harrison/haybale/internal/search/binary"
	"github.com/harrison/haybale/internal/search/filter"
	"github.com/harrison/haybale/internal/search/match"
)

// eventBufferSize bounds how far the producer goroutine can run ahead of a
// slow consumer before it blocks on the channel send.
const eventBufferSize = 16

// SearchCoordinator drives the directory walk described by a SearchQuery
// and streams the resulting SearchEvents. It owns no state beyond a single
// invocation of Search: the visited-directory set is scoped to that call.
type SearchCoordinator struct {
	query   *SearchQuery
	options SearchOptions

	nameMatcher    *match.NameMatcher
	textSearcher   *match.TextContentSearcher
	binarySearcher *match.BinaryContentSearcher
	fileFilter     *filter.FileFilter
	detector       *binary.Detector
}

// New builds a SearchCoordinator for query.
func New(query *SearchQuery) *SearchCoordinator {
	c := &SearchCoordinator{
		query:    query,
		options:  query.Options,
		detector: binary.NewDetector(),
		fileFilter: &filter.FileFilter{
			IncludeHidden:  query.Options.IncludeHidden,
			MinSizeBytes:   query.Options.MinSizeBytes,
			MaxSizeBytes:   query.Options.MaxSizeBytes,
			ModifiedAfter:  query.Options.ModifiedAfter,
			ModifiedBefore: query.Options.ModifiedBefore,
		},
	}

	if query.NamePattern != nil {
		c.nameMatcher = match.NewNameMatcher(query.NamePattern)
	}
	if query.ContentPattern != nil {
		c.textSearcher = match.NewTextContentSearcher(query.ContentPattern, query.Options.CaseSensitiveContent)
		c.binarySearcher = match.NewBinaryContentSearcher(query.ContentPattern, query.Options.CaseSensitiveContent)
	}

	return c
}

// Search starts the walk in a single producer goroutine and returns the
// channel of events it feeds. The channel is closed once the walk
// completes, the context is cancelled, or the root cannot be read.
func (c *SearchCoordinator) Search(ctx context.Context) <-chan SearchEvent {
	out := make(chan SearchEvent, eventBufferSize)

	go func() {
		defer close(out)

		info, err := os.Stat(c.query.Root)
		if err != nil {
			emit(ctx, out, warningEvent(c.query.Root, "root unreadable: "+err.Error()))
			return
		}
		if !info.IsDir() {
			emit(ctx, out, warningEvent(c.query.Root, "root is not a directory"))
			return
		}

		visited := make(map[dirIdentity]bool)
		if id, ok := identityOf(info); ok {
			visited[id] = true
		}

		c.walk(ctx, out, c.query.Root, 0, visited)
	}()

	return out
}

// emit delivers ev to out, returning false without blocking forever if ctx
// is cancelled first.
func emit(ctx context.Context, out chan<- SearchEvent, ev SearchEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// processFile runs the seven-step per-file pipeline: hidden filtering has
// already happened in walk, so this starts at the name matcher.
func (c *SearchCoordinator) processFile(ctx context.Context, out chan<- SearchEvent, path string, info os.FileInfo) {
	if c.nameMatcher != nil && !c.nameMatcher.Match(path) {
		return
	}

	if !c.fileFilter.Allow(path, info) {
		return
	}

	if c.query.ContentPattern == nil {
		emit(ctx, out, resultEvent(SearchResult{Path: path}))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		emit(ctx, out, warningEvent(path, "unreadable: "+err.Error()))
		return
	}

	if c.detector.ClassifyBytes(data) {
		if !c.options.SearchBinaries {
			return
		}
		matches := c.binarySearcher.Search(data)
		if len(matches) == 0 {
			return
		}
		emit(ctx, out, resultEvent(SearchResult{Path: path, ContentMatches: matches}))
		return
	}

	matches, degraded := c.textSearcher.Search(data)
	if degraded {
		if !emit(ctx, out, warningEvent(path, "large file regex degraded to line mode")) {
			return
		}
	}
	if len(matches) == 0 {
		return
	}
	emit(ctx, out, resultEvent(SearchResult{Path: path, ContentMatches: matches}))
}
