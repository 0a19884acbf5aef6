package binary

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding names the character encoding an ExtractedString was decoded
// under.
type Encoding int

const (
	// EncodingASCII marks a run made entirely of 7-bit ASCII bytes.
	EncodingASCII Encoding = iota
	// EncodingUTF8 marks a run containing at least one multi-byte UTF-8
	// sequence.
	EncodingUTF8
	// EncodingUTF16LE marks a run decoded from little-endian UTF-16.
	EncodingUTF16LE
)

// ExtractedString is one maximal printable run pulled from a binary file,
// tagged with the absolute byte offset it started at.
type ExtractedString struct {
	Value      string
	ByteOffset int
	Encoding   Encoding
}

// minRunLength is the minimum number of characters (or UTF-16 code units)
// a run must have to be reported.
const minRunLength = 4

// Extractor pulls printable strings out of an arbitrary byte stream,
// scanning ASCII/UTF-8 and UTF-16LE candidates and resolving overlaps by
// preferring the longer run, ties going to UTF-8.
type Extractor struct{}

// NewExtractor returns a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans data and returns every ExtractedString found, in
// increasing ByteOffset order.
func (x *Extractor) Extract(data []byte) []ExtractedString {
	var out []ExtractedString

	pos := 0
	for pos < len(data) {
		utf8Run, utf8Len, utf8RuneCount, utf8Ascii, utf8Ok := scanUTF8Run(data, pos)

		var utf16Run string
		var utf16Len, utf16Units int
		var utf16Ok bool
		if pos%2 == 0 {
			utf16Run, utf16Len, utf16Units, utf16Ok = scanUTF16LERun(data, pos)
		}

		switch {
		case utf8Ok && utf16Ok:
			if utf16Units > utf8RuneCount {
				out = append(out, ExtractedString{Value: utf16Run, ByteOffset: pos, Encoding: EncodingUTF16LE})
				pos += utf16Len
			} else {
				out = append(out, ExtractedString{Value: utf8Run, ByteOffset: pos, Encoding: encodingOf(utf8Ascii)})
				pos += utf8Len
			}
		case utf8Ok:
			out = append(out, ExtractedString{Value: utf8Run, ByteOffset: pos, Encoding: encodingOf(utf8Ascii)})
			pos += utf8Len
		case utf16Ok:
			out = append(out, ExtractedString{Value: utf16Run, ByteOffset: pos, Encoding: EncodingUTF16LE})
			pos += utf16Len
		default:
			pos++
		}
	}

	return out
}

func encodingOf(ascii bool) Encoding {
	if ascii {
		return EncodingASCII
	}
	return EncodingUTF8
}

// isPrintable reports whether r belongs to haybale's printable set:
// Unicode general categories L, N, P, S, Z, plus ASCII tab.
func isPrintable(r rune) bool {
	if r == '\t' {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsPunct(r) ||
		unicode.IsSymbol(r) || unicode.Is(unicode.Z, r)
}

// scanUTF8Run greedily extends a printable run starting at start, decoding
// well-formed UTF-8 sequences (single bytes included). It stops at the
// first non-printable rune, control character other than tab, or decoding
// failure. Reports the decoded text, the number of bytes consumed, the
// rune count, whether every rune was 7-bit ASCII, and whether the run met
// the minimum length.
func scanUTF8Run(data []byte, start int) (value string, byteLen int, runeCount int, allASCII bool, ok bool) {
	allASCII = true
	i := start
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if !isPrintable(r) {
			break
		}
		if r > unicode.MaxASCII {
			allASCII = false
		}
		i += size
		runeCount++
	}
	byteLen = i - start
	if runeCount < minRunLength {
		return "", 0, 0, false, false
	}
	return string(data[start:i]), byteLen, runeCount, allASCII, true
}

// scanUTF16LERun looks for an alternating printable/0x00 byte pattern of
// at least minRunLength UTF-16 code units, starting at the even offset
// start.
func scanUTF16LERun(data []byte, start int) (value string, byteLen int, units int, ok bool) {
	var codeUnits []uint16
	i := start
	for i+1 < len(data) {
		lo, hi := data[i], data[i+1]
		if hi != 0x00 {
			break
		}
		r := rune(lo)
		if !isPrintable(r) {
			break
		}
		codeUnits = append(codeUnits, uint16(lo))
		i += 2
	}

	if len(codeUnits) < minRunLength {
		return "", 0, 0, false
	}

	runes := utf16.Decode(codeUnits)
	return string(runes), i - start, len(codeUnits), true
}
