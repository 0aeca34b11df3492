// Package log: leveled logging interface, standard-library backend,
// and the package-level default logger.

package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// LogLevel orders logging severities. A logger emits a message when
// the message's level is at or above the logger's own.
type LogLevel int

const (
	// LogLevelDebug is for detailed diagnostic output (solver traces).
	LogLevelDebug LogLevel = iota

	// LogLevelInfo is for normal operational messages.
	LogLevelInfo

	// LogLevelWarn is for recoverable anomalies.
	LogLevelWarn

	// LogLevelError is for failures.
	LogLevelError

	// LogLevelNone disables all output.
	LogLevelNone
)

// String returns the canonical name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// Logger is the printf-style leveled logging interface consumed by the
// rest of the module. Implementations decide formatting and routing;
// callers only pick severities.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// DefaultLogger implements Logger over the standard library logger.
type DefaultLogger struct {
	logger *stdlog.Logger
	level  LogLevel
}

var _ Logger = (*DefaultLogger)(nil)

// NewDefaultLogger returns a Logger writing to stderr with a "[quiver]"
// prefix, filtering below level.
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		logger: stdlog.New(os.Stderr, "[quiver] ", stdlog.LstdFlags),
		level:  level,
	}
}

// NewCustomLogger returns a Logger writing to out, filtering below level.
func NewCustomLogger(out io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		logger: stdlog.New(out, "[quiver] ", stdlog.LstdFlags),
		level:  level,
	}
}

// Debug logs at LogLevelDebug.
func (l *DefaultLogger) Debug(format string, v ...any) {
	if l.level <= LogLevelDebug {
		l.logger.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs at LogLevelInfo.
func (l *DefaultLogger) Info(format string, v ...any) {
	if l.level <= LogLevelInfo {
		l.logger.Printf("[INFO] "+format, v...)
	}
}

// Warn logs at LogLevelWarn.
func (l *DefaultLogger) Warn(format string, v ...any) {
	if l.level <= LogLevelWarn {
		l.logger.Printf("[WARN] "+format, v...)
	}
}

// Error logs at LogLevelError.
func (l *DefaultLogger) Error(format string, v ...any) {
	if l.level <= LogLevelError {
		l.logger.Printf("[ERROR] "+format, v...)
	}
}

// NoOpLogger discards everything. Useful as an explicit "no tracing"
// value where a Logger is required.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

// Debug does nothing.
func (NoOpLogger) Debug(format string, v ...any) {}

// Info does nothing.
func (NoOpLogger) Info(format string, v ...any) {}

// Warn does nothing.
func (NoOpLogger) Warn(format string, v ...any) {}

// Error does nothing.
func (NoOpLogger) Error(format string, v ...any) {}

// defaultLogger backs the package-level convenience functions.
var defaultLogger Logger = NewDefaultLogger(LogLevelInfo)

// SetDefaultLogger replaces the package-level logger. A nil logger is
// ignored.
func SetDefaultLogger(l Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// GetDefaultLogger returns the current package-level logger.
func GetDefaultLogger() Logger { return defaultLogger }

// SetLogLevel installs a fresh stderr DefaultLogger at the given level
// as the package-level logger.
func SetLogLevel(level LogLevel) {
	defaultLogger = NewDefaultLogger(level)
}

// Debug logs through the package-level logger.
func Debug(format string, v ...any) { defaultLogger.Debug(format, v...) }

// Info logs through the package-level logger.
func Info(format string, v ...any) { defaultLogger.Info(format, v...) }

// Warn logs through the package-level logger.
func Warn(format string, v ...any) { defaultLogger.Warn(format, v...) }

// Error logs through the package-level logger.
func Error(format string, v ...any) { defaultLogger.Error(format, v...) }
