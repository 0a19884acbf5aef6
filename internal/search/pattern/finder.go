package pattern

import (
	"regexp"
	"unicode"
)

// MatchRange is a half-open span of code-unit offsets within whatever text
// buffer a Finder was run against.
type MatchRange struct {
	Start int
	End   int
}

// Finder is a context-free predicate over a text buffer: it reports every
// match range it finds, or none. Both WildcardFinder and RegexFinder
// implement it; there is no third variant, per the closed pattern grammar.
type Finder interface {
	FindMatches(text string) []MatchRange
}

// NewFinder builds the Finder appropriate to expr's Kind, applying
// caseSensitive only to the wildcard variant — a regex's own flags are
// authoritative and this argument is ignored for KindRegex.
func NewFinder(expr *Expr, caseSensitive bool) Finder {
	switch expr.Kind {
	case KindRegex:
		return &RegexFinder{re: expr.Regex}
	default:
		return &WildcardFinder{alts: expr.Alternatives, caseSensitive: caseSensitive}
	}
}

// WildcardFinder matches text as a whole against one or more wildcard
// alternatives, anchored at both ends. It reports at most one range: the
// full extent of text, when any alternative matches.
type WildcardFinder struct {
	alts          []Alternative
	caseSensitive bool
}

// FindMatches returns []MatchRange{{0, len(text)}} if any alternative
// matches the entirety of text, or nil otherwise.
func (f *WildcardFinder) FindMatches(text string) []MatchRange {
	runes := []rune(text)
	for _, alt := range f.alts {
		if matchAlternative(alt.Segments, runes, f.caseSensitive) {
			return []MatchRange{{Start: 0, End: len(text)}}
		}
	}
	return nil
}

// matchAlternative reports whether segs matches all of runes, anchored at
// both ends, via straightforward backtracking (segment counts in a wildcard
// pattern are small, so this stays fast in practice).
func matchAlternative(segs []Segment, runes []rune, caseSensitive bool) bool {
	return matchFrom(segs, runes, caseSensitive)
}

func matchFrom(segs []Segment, runes []rune, caseSensitive bool) bool {
	if len(segs) == 0 {
		return len(runes) == 0
	}

	seg := segs[0]
	if !seg.Star {
		lit := []rune(seg.Literal)
		if len(runes) < len(lit) {
			return false
		}
		if !runesEqual(runes[:len(lit)], lit, caseSensitive) {
			return false
		}
		return matchFrom(segs[1:], runes[len(lit):], caseSensitive)
	}

	// Star: try consuming 0..len(runes) runes, shortest first.
	for i := 0; i <= len(runes); i++ {
		if matchFrom(segs[1:], runes[i:], caseSensitive) {
			return true
		}
	}
	return false
}

func runesEqual(a, b []rune, caseSensitive bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if caseSensitive || !foldEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// foldEqual reports whether r1 and r2 are the same rune under Unicode
// simple case folding, walking the fold orbit since SimpleFold only steps
// to the next member.
func foldEqual(r1, r2 rune) bool {
	if r1 == r2 {
		return true
	}
	for r := unicode.SimpleFold(r1); r != r1; r = unicode.SimpleFold(r) {
		if r == r2 {
			return true
		}
	}
	return false
}

// RegexFinder returns every non-overlapping match found by a left-to-right
// scan of text. It carries no case-sensitivity flag of its own — the
// compiled pattern is authoritative.
type RegexFinder struct {
	re *regexp.Regexp
}

func (f *RegexFinder) FindMatches(text string) []MatchRange {
	locs := f.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	ranges := make([]MatchRange, len(locs))
	for i, loc := range locs {
		ranges[i] = MatchRange{Start: loc[0], End: loc[1]}
	}
	return ranges
}
