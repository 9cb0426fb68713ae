// Package ports defines the interfaces foldora's operations depend on.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug traces every entry an operation touches.
	LevelDebug LogLevel = iota
	// LevelInfo is for command-level progress.
	LevelInfo
	// LevelWarn reports per-entry failures that did not stop a batch.
	LevelWarn
	// LevelError reports failures that aborted a command.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging with translatable message keys.
type Logger interface {
	// Debug logs a per-entry trace message. The msg parameter is a
	// message key that can be translated.
	Debug(msg string, args ...interface{})

	// Info logs a command-level message.
	Info(msg string, args ...interface{})

	// Warn logs a per-entry failure.
	Warn(msg string, args ...interface{})

	// Error logs a failure that aborted the command.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the
	// operation name (purge, normalize, ...).
	WithComponent(component string) Logger
}
