package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "warn")

	l.LogInfo("should be filtered")
	l.LogWarn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be filtered")
	assert.Contains(t, out, "should appear")
}

func TestConsoleLoggerFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "trace")

	l.LogInfo("found %d results in %s", 3, "root")

	assert.Contains(t, buf.String(), "found 3 results in root")
}

func TestConsoleLoggerNonTerminalWriterIsUncolored(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "info")
	assert.False(t, l.colorOutput)

	l.LogInfo("plain message")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestConsoleLoggerSearchSummary(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "info")

	l.LogSearchSummary(4, 1, 250*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "4 results")
	assert.Contains(t, out, "1 warnings")
}

func TestNormalizeLogLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, "info", normalizeLogLevel("bogus"))
	assert.Equal(t, "debug", normalizeLogLevel("  Debug "))
}

func TestNoOpLoggerDiscardsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		l := NewNoOpLogger()
		l.LogTrace("x")
		l.LogInfo("x")
		l.LogWarn("x")
		l.LogError("x")
		l.LogSearchStart("*.go")
		l.LogSearchSummary(1, 0, time.Second)
	})
}

func TestFormatMessageWithoutArgsPassesThrough(t *testing.T) {
	assert.Equal(t, "100% done", formatMessage("100% done"))
	assert.True(t, strings.HasPrefix(formatMessage("count: %d", 5), "count: 5"))
}
