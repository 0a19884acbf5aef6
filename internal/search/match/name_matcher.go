package match

import (
	"path/filepath"

	"github.com/harrison/haybale/internal/search/pattern"
)

// NameMatcher matches a file's basename against a PatternExpr. It is
// always case-insensitive for wildcard patterns, regardless of the
// content case-sensitivity toggle; regex patterns honor their own inline
// flags.
type NameMatcher struct {
	finder pattern.Finder
}

// NewNameMatcher builds a NameMatcher for expr.
func NewNameMatcher(expr *pattern.Expr) *NameMatcher {
	return &NameMatcher{finder: pattern.NewFinder(expr, false)}
}

// Match reports whether path's basename satisfies the matcher's pattern.
func (m *NameMatcher) Match(path string) bool {
	base := filepath.Base(path)
	return len(m.finder.FindMatches(base)) > 0
}
