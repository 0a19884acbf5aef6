package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelTrace = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes leveled, timestamped log lines to a writer,
// colorizing them with fatih/color when that writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger builds a ConsoleLogger writing to writer, gated at
// logLevel. Colorization is enabled automatically when writer is a
// terminal and colors haven't been globally disabled.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a real terminal file descriptor and
// colors have not been disabled globally (NO_COLOR, color.NoColor).
func isTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func normalizeLogLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	default:
		return "info"
	}
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (c *ConsoleLogger) shouldLog(level string) bool {
	return logLevelToInt(level) >= logLevelToInt(c.logLevel)
}

func (c *ConsoleLogger) LogTrace(msg string, args ...interface{}) {
	c.logWithLevel("trace", formatMessage(msg, args...))
}

func (c *ConsoleLogger) LogDebug(msg string, args ...interface{}) {
	c.logWithLevel("debug", formatMessage(msg, args...))
}

func (c *ConsoleLogger) LogInfo(msg string, args ...interface{}) {
	c.logWithLevel("info", formatMessage(msg, args...))
}

func (c *ConsoleLogger) LogWarn(msg string, args ...interface{}) {
	c.logWithLevel("warn", formatMessage(msg, args...))
}

func (c *ConsoleLogger) LogError(msg string, args ...interface{}) {
	c.logWithLevel("error", formatMessage(msg, args...))
}

func (c *ConsoleLogger) LogSearchStart(query string) {
	c.LogInfo("search started: %s", query)
}

func (c *ConsoleLogger) LogSearchSummary(resultCount, warningCount int, duration time.Duration) {
	c.LogInfo("search finished: %d results, %d warnings in %s", resultCount, warningCount, formatDuration(duration))
}

func (c *ConsoleLogger) logWithLevel(level, message string) {
	if !c.shouldLog(level) {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	timestamp := time.Now().Format("15:04:05")
	line := fmt.Sprintf("[%s] [%s] %s", timestamp, strings.ToUpper(level), message)
	if c.colorOutput {
		line = c.formatWithColor(level, timestamp, message)
	}
	fmt.Fprintln(c.writer, line)
}

func (c *ConsoleLogger) formatWithColor(level, timestamp, message string) string {
	levelColor := levelColorFor(level)
	dim := color.New(color.Faint)

	return fmt.Sprintf("%s %s %s",
		dim.Sprintf("[%s]", timestamp),
		levelColor.Sprintf("[%s]", strings.ToUpper(level)),
		message,
	)
}

func levelColorFor(level string) *color.Color {
	switch level {
	case "trace":
		return color.New(color.Faint)
	case "debug":
		return color.New(color.FgCyan)
	case "warn":
		return color.New(color.FgYellow)
	case "error":
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgGreen)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Millisecond * 10).String()
}
