// Package binary implements haybale's binary-file classification and
// printable-string extraction.
package binary

import (
	"bufio"
	"bytes"
	"io"
)

// sniffLen is the number of leading bytes inspected to classify a file.
const sniffLen = 8192

// Detector classifies a byte stream as text or binary by inspecting its
// prefix. It carries no state and is safe for concurrent use.
type Detector struct{}

// NewDetector returns a ready-to-use Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Classify reports whether r's content is binary: true if the first 8 KiB
// contains a zero byte, false otherwise. Files shorter than 8 KiB are
// classified from their entire content; an empty stream is text.
func (d *Detector) Classify(r io.Reader) (isBinary bool, err error) {
	br := bufio.NewReaderSize(r, sniffLen)
	prefix, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return false, err
	}
	return bytes.IndexByte(prefix, 0x00) >= 0, nil
}

// ClassifyBytes is a convenience wrapper over Classify for callers that
// already hold the prefix (or the whole file) in memory.
func (d *Detector) ClassifyBytes(b []byte) bool {
	prefix := b
	if len(prefix) > sniffLen {
		prefix = prefix[:sniffLen]
	}
	return bytes.IndexByte(prefix, 0x00) >= 0
}
