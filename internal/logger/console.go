// Package logger provides leveled console logging for quickreplace runs.
//
// Log lines go to the diagnostic stream (stderr) and are prefixed with a
// [HH:MM:SS] timestamp, the level, and the run id. Pipeline progress is
// logged at debug level, so a successful run at the default level prints
// nothing.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DefaultLevel is used when no level or an unknown level is given.
const DefaultLevel = "info"

// Logger is the logging surface the pipeline depends on.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	Enabled(level string) bool
}

// ConsoleLogger logs to a writer with timestamps, run id and thread safety.
// It supports log level filtering to control message verbosity.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	runID       string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// colorOutput controls whether the level tag is colored.
func NewConsoleLogger(writer io.Writer, logLevel string, colorOutput bool) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		runID:       NewRunID(),
		colorOutput: colorOutput,
	}
}

// NewRunID returns a short random identifier for one invocation.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// RunID returns the identifier attached to every line this logger writes.
func (cl *ConsoleLogger) RunID() string {
	return cl.runID
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return DefaultLevel
}

// Enabled reports whether a message at level would be written.
func (cl *ConsoleLogger) Enabled(level string) bool {
	if cl.writer == nil {
		return false
	}
	return logLevelToInt(strings.ToLower(level)) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel writes "[HH:MM:SS] [LEVEL] [run] message" if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if !cl.Enabled(level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level
	if cl.colorOutput {
		tag = levelColor(level).Sprint(level)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] [%s] %s\n", timestamp(), tag, cl.runID, message)
}

// levelColor returns an always-enabled color for the level tag.
func levelColor(level string) *color.Color {
	var c *color.Color
	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		c = color.New(color.Reset)
	}
	c.EnableColor()
	return c
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that writes nothing.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}

// Enabled always returns false.
func (n *NoOpLogger) Enabled(level string) bool { return false }
