package binary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorClassifyText(t *testing.T) {
	d := NewDetector()
	isBinary, err := d.Classify(strings.NewReader("hello, world\nno nulls here\n"))
	require.NoError(t, err)
	assert.False(t, isBinary)
}

func TestDetectorClassifyBinary(t *testing.T) {
	d := NewDetector()
	data := append([]byte("HELLO"), 0x00, 0x00, 0x00)
	isBinary, err := d.Classify(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, isBinary)
}

func TestDetectorClassifyEmptyIsText(t *testing.T) {
	d := NewDetector()
	isBinary, err := d.Classify(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.False(t, isBinary)
}

func TestDetectorClassifyOnlyInspectsPrefix(t *testing.T) {
	d := NewDetector()
	data := append(bytes.Repeat([]byte("a"), sniffLen), 0x00, 0x00, 0x00, 0x00)
	isBinary, err := d.Classify(bytes.NewReader(data))
	require.NoError(t, err)
	assert.False(t, isBinary)
}

func TestExtractorASCIIRun(t *testing.T) {
	x := NewExtractor()
	data := []byte("\x00\x00HELLO\x00\x00")
	strs := x.Extract(data)
	require.Len(t, strs, 1)
	assert.Equal(t, "HELLO", strs[0].Value)
	assert.Equal(t, 2, strs[0].ByteOffset)
	assert.Equal(t, EncodingASCII, strs[0].Encoding)
}

func TestExtractorShortRunDropped(t *testing.T) {
	x := NewExtractor()
	data := []byte("\x00ab\x00")
	strs := x.Extract(data)
	assert.Empty(t, strs)
}

func TestExtractorMultipleRuns(t *testing.T) {
	x := NewExtractor()
	data := []byte("\x00HELLO\x00\x00WORLD\x00")
	strs := x.Extract(data)
	require.Len(t, strs, 2)
	assert.Equal(t, "HELLO", strs[0].Value)
	assert.Equal(t, "WORLD", strs[1].Value)
	assert.Less(t, strs[0].ByteOffset, strs[1].ByteOffset)
}

func TestExtractorUTF16LERun(t *testing.T) {
	x := NewExtractor()
	// Two leading zero bytes, then "TEST" encoded as UTF-16LE starting at
	// the even offset 2.
	data := []byte{0x00, 0x00, 'T', 0x00, 'E', 0x00, 'S', 0x00, 'T', 0x00}
	strs := x.Extract(data)
	require.Len(t, strs, 1)
	assert.Equal(t, "TEST", strs[0].Value)
	assert.Equal(t, EncodingUTF16LE, strs[0].Encoding)
	assert.Equal(t, 2, strs[0].ByteOffset)
}

func TestExtractorByteOffsetsIncreasing(t *testing.T) {
	x := NewExtractor()
	data := []byte("\x00AAAA\x00BBBB\x00CCCC\x00")
	strs := x.Extract(data)
	require.Len(t, strs, 3)
	for i := 1; i < len(strs); i++ {
		assert.Greater(t, strs[i].ByteOffset, strs[i-1].ByteOffset)
	}
}
