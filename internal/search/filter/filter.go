// Package filter implements haybale's metadata predicate (size, modified
// time, hidden-file toggle) and the human-readable size/date parsers used
// to build it.
package filter

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileFilter is the metadata predicate applied to each candidate file
// after its name has matched and before its content is read. Decision
// order is hidden, then size, then date; a missing bound is permissive.
type FileFilter struct {
	IncludeHidden  bool
	MinSizeBytes   *int64
	MaxSizeBytes   *int64
	ModifiedAfter  *time.Time
	ModifiedBefore *time.Time
}

// IsHidden reports whether path's basename marks it hidden: it starts with
// a '.' and is not the "." or ".." traversal entry.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return false
	}
	return strings.HasPrefix(base, ".")
}

// Allow reports whether info's file, at path, passes the filter.
func (f *FileFilter) Allow(path string, info os.FileInfo) bool {
	if !f.IncludeHidden && IsHidden(path) {
		return false
	}

	size := info.Size()
	if f.MinSizeBytes != nil && size < *f.MinSizeBytes {
		return false
	}
	if f.MaxSizeBytes != nil && size > *f.MaxSizeBytes {
		return false
	}

	modTime := info.ModTime()
	if f.ModifiedAfter != nil && modTime.Before(*f.ModifiedAfter) {
		return false
	}
	if f.ModifiedBefore != nil && modTime.After(*f.ModifiedBefore) {
		return false
	}

	return true
}
