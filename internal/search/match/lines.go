package match

import "sort"

// line is one logical line of a decoded text buffer, with its byte extent
// (excluding the terminator) in that buffer.
type line struct {
	Number      int
	Text        string
	StartOffset int
	EndOffset   int
}

// splitLines breaks text into lines on \n, \r\n and \r, numbering them
// from 1. A trailing chunk with no terminator is still reported as a line,
// and an empty buffer yields a single empty line so lineNumber invariants
// (>= 1) always hold.
func splitLines(text string) []line {
	var lines []line
	start := 0
	num := 1
	n := len(text)

	i := 0
	for i < n {
		switch text[i] {
		case '\n':
			lines = append(lines, line{Number: num, Text: text[start:i], StartOffset: start, EndOffset: i})
			i++
			start = i
			num++
		case '\r':
			end := i
			i++
			if i < n && text[i] == '\n' {
				i++
			}
			lines = append(lines, line{Number: num, Text: text[start:end], StartOffset: start, EndOffset: end})
			start = i
			num++
		default:
			i++
		}
	}

	if start < n || len(lines) == 0 {
		lines = append(lines, line{Number: num, Text: text[start:n], StartOffset: start, EndOffset: n})
	}

	return lines
}

// lineIndexForOffset returns the index into lines of the line containing
// byte offset in the original buffer.
func lineIndexForOffset(lines []line, offset int) int {
	idx := sort.Search(len(lines), func(i int) bool { return lines[i].StartOffset > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	return idx
}

// contextBefore returns up to the two lines preceding lineNumber, truncated
// at the start of the file.
func contextBefore(lines []line, lineNumber int) []ContextLine {
	var ctx []ContextLine
	for n := lineNumber - 2; n < lineNumber; n++ {
		idx := n - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		ctx = append(ctx, ContextLine{LineNumber: lines[idx].Number, Text: lines[idx].Text})
	}
	return ctx
}

// contextAfter returns up to the two lines following lineNumber, truncated
// at the end of the file.
func contextAfter(lines []line, lineNumber int) []ContextLine {
	var ctx []ContextLine
	for n := lineNumber + 1; n <= lineNumber+2; n++ {
		idx := n - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		ctx = append(ctx, ContextLine{LineNumber: lines[idx].Number, Text: lines[idx].Text})
	}
	return ctx
}
