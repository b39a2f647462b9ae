package tablekit

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogLevel represents the severity of a log message (higher value = higher severity)
type LogLevel int

const (
	LevelTrace  LogLevel = iota // Detailed tracing (requires enabled + category)
	LevelInfo                   // Informational messages (requires enabled + category)
	LevelDebug                  // Development debugging (requires enabled + category)
	LevelNotice                 // Notable events (always shown)
	LevelWarn                   // Warnings (always shown)
	LevelError                  // Runtime errors (always shown)
)

// LogCategory represents the subsystem generating the message
type LogCategory string

const (
	CatNone   LogCategory = ""       // Uncategorized
	CatModel  LogCategory = "model"  // Grid mutations and queries
	CatEditor LogCategory = "editor" // Cell editor parse/format
	CatFilter LogCategory = "filter" // Filter proxy
	CatExport LogCategory = "export" // HTML/CSV/JSON generation and file writes
	CatPrint  LogCategory = "print"  // Print and preview paths
	CatQt     LogCategory = "qt"     // Qt frontend
	CatGtk    LogCategory = "gtk"    // GTK frontend
	CatFyne   LogCategory = "fyne"   // fyne frontend
)

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m" // Bright yellow foreground
	colorReset  = "\x1b[0m"  // Reset to default
)

// Logger handles diagnostics for the table packages. Failure modes of the
// widget itself stay silent toward callers; the logger is the only place they
// leave a trace.
type Logger struct {
	enabled           bool
	enabledCategories map[LogCategory]bool
	out               io.Writer
	errOut            io.Writer
	// colorEnabled is true if terminal colors should be used for stderr output
	colorEnabled bool
}

// stderrSupportsColor checks if stderr is a terminal that supports color output
func stderrSupportsColor() bool {
	stderrInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	// ModeCharDevice indicates a terminal
	if (stderrInfo.Mode() & os.ModeCharDevice) == 0 {
		return false
	}

	// Respect NO_COLOR environment variable (https://no-color.org/)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	return true
}

// NewLogger creates a new logger. enabled gates the Trace/Info/Debug levels;
// Notice and above are always emitted.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled:           enabled,
		enabledCategories: make(map[LogCategory]bool),
		out:               os.Stdout,
		errOut:            os.Stderr,
		colorEnabled:      stderrSupportsColor(),
	}
}

// SetEnabled turns debug-level output on or off.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// SetOutput redirects debug output (Trace/Info/Debug).
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// SetErrorOutput redirects diagnostic output (Notice/Warn/Error) and disables
// terminal coloring.
func (l *Logger) SetErrorOutput(w io.Writer) {
	l.errOut = w
	l.colorEnabled = false
}

// EnableCategory enables output for one category, or all when cat is "all".
func (l *Logger) EnableCategory(cat LogCategory) {
	if cat == "all" {
		for _, c := range []LogCategory{CatModel, CatEditor, CatFilter, CatExport, CatPrint, CatQt, CatGtk, CatFyne} {
			l.enabledCategories[c] = true
		}
		return
	}
	l.enabledCategories[cat] = true
}

// DisableCategory disables output for one category.
func (l *Logger) DisableCategory(cat LogCategory) {
	delete(l.enabledCategories, cat)
}

func (l *Logger) categoryEnabled(cat LogCategory) bool {
	if cat == CatNone {
		return true
	}
	return l.enabledCategories[cat]
}

func (l *Logger) log(level LogLevel, cat LogCategory, format string, args ...interface{}) {
	gated := level < LevelNotice
	if gated && (!l.enabled || !l.categoryEnabled(cat)) {
		return
	}

	var prefix string
	switch level {
	case LevelTrace:
		prefix = "TRACE"
	case LevelInfo:
		prefix = "INFO"
	case LevelDebug:
		prefix = "DEBUG"
	case LevelNotice:
		prefix = "NOTICE"
	case LevelWarn:
		prefix = "WARNING"
	case LevelError:
		prefix = "ERROR"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	if cat != CatNone {
		sb.WriteString(" [")
		sb.WriteString(string(cat))
		sb.WriteString("]")
	}
	sb.WriteString(": ")
	sb.WriteString(fmt.Sprintf(format, args...))
	output := sb.String()

	if gated {
		_, _ = fmt.Fprintln(l.out, output)
		return
	}
	if l.colorEnabled {
		_, _ = fmt.Fprintf(l.errOut, "%s%s%s\n", colorYellow, output, colorReset)
	} else {
		_, _ = fmt.Fprintln(l.errOut, output)
	}
}

// Trace logs detailed tracing output.
func (l *Logger) Trace(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelTrace, cat, format, args...)
}

// Info logs informational output.
func (l *Logger) Info(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelInfo, cat, format, args...)
}

// Debug logs development debugging output.
func (l *Logger) Debug(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelDebug, cat, format, args...)
}

// Notice logs a notable event. Always shown.
func (l *Logger) Notice(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelNotice, cat, format, args...)
}

// Warn logs a warning. Always shown.
func (l *Logger) Warn(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelWarn, cat, format, args...)
}

// Error logs a runtime error. Always shown.
func (l *Logger) Error(cat LogCategory, format string, args ...interface{}) {
	l.log(LevelError, cat, format, args...)
}
