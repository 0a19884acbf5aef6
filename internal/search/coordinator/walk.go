package coordinator

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/haybale/internal/search/filter"
)

// dirEntry is a directory child, resolved enough to know whether it is
// itself a directory (following symlinks) before it is sorted and routed.
type dirEntry struct {
	path       string
	info       os.FileInfo
	isDir      bool
	brokenLink bool
}

// listDir reads dir's children, resolves each (following symlinks) and
// returns them sorted in case-insensitive lexicographic basename order.
// Entries whose target could not be resolved are reported separately so
// the caller can emit a warning for them.
func listDir(dir string) (entries []dirEntry, broken []dirEntry, err error) {
	raw, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(raw, func(i, j int) bool {
		return strings.ToLower(raw[i].Name()) < strings.ToLower(raw[j].Name())
	})

	for _, e := range raw {
		full := filepath.Join(dir, e.Name())

		if e.Type()&os.ModeSymlink != 0 {
			info, statErr := os.Stat(full)
			if statErr != nil {
				broken = append(broken, dirEntry{path: full, brokenLink: true})
				continue
			}
			entries = append(entries, dirEntry{path: full, info: info, isDir: info.IsDir()})
			continue
		}

		info, infoErr := e.Info()
		if infoErr != nil {
			broken = append(broken, dirEntry{path: full, brokenLink: false})
			continue
		}
		entries = append(entries, dirEntry{path: full, info: info, isDir: e.IsDir()})
	}

	return entries, broken, nil
}

// walk processes dir at the given depth (the depth its own children sit
// at) emitting SearchEvents for files and recursing into subdirectories
// while depth stays within the query's MaxDepth.
func (c *SearchCoordinator) walk(ctx context.Context, out chan<- SearchEvent, dir string, depth int, visited map[dirIdentity]bool) {
	entries, broken, err := listDir(dir)
	if err != nil {
		emit(ctx, out, warningEvent(dir, "unreadable: "+err.Error()))
		return
	}

	for _, b := range broken {
		reason := "broken symlink"
		if !b.brokenLink {
			reason = "unreadable"
		}
		emit(ctx, out, warningEvent(b.path, reason))
	}

	var files, dirs []dirEntry
	for _, e := range entries {
		if !c.options.IncludeHidden && filter.IsHidden(e.path) {
			continue
		}
		if e.isDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	for _, f := range files {
		if ctx.Err() != nil {
			return
		}
		c.processFile(ctx, out, f.path, f.info)
	}

	if c.options.MaxDepth != nil && depth >= *c.options.MaxDepth {
		return
	}

	for _, d := range dirs {
		if ctx.Err() != nil {
			return
		}

		id, ok := identityOf(d.info)
		if ok {
			if visited[id] {
				emit(ctx, out, warningEvent(d.path, "symlink cycle"))
				continue
			}
			visited[id] = true
		}

		c.walk(ctx, out, d.path, depth+1, visited)
	}
}
