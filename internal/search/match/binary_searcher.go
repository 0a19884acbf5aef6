package match

import (
	"github.com/harrison/haybale/internal/search/binary"
	"github.com/harrison/haybale/internal/search/pattern"
)

// BinaryContentSearcher drives a binary.Extractor over a file's bytes and
// applies a finder to each extracted string.
type BinaryContentSearcher struct {
	finder    pattern.Finder
	extractor *binary.Extractor
}

// NewBinaryContentSearcher builds a BinaryContentSearcher for expr.
func NewBinaryContentSearcher(expr *pattern.Expr, caseSensitive bool) *BinaryContentSearcher {
	return &BinaryContentSearcher{
		finder:    pattern.NewFinder(expr, caseSensitive),
		extractor: binary.NewExtractor(),
	}
}

// Search returns one ContentMatch per extracted string that matches,
// numbered by the string's ordinal position within the file.
func (s *BinaryContentSearcher) Search(data []byte) []ContentMatch {
	strs := s.extractor.Extract(data)

	var out []ContentMatch
	for i, es := range strs {
		ranges := s.finder.FindMatches(es.Value)
		if len(ranges) == 0 {
			continue
		}
		out = append(out, ContentMatch{
			LineNumber: i + 1,
			LineText:   es.Value,
			Ranges:     ranges,
		})
	}
	return out
}
