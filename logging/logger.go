package logging

import (
	"fmt"
	"strings"
)

// Level represents logging severity.
type Level int

const (
	// LevelDebug for detailed debugging information
	LevelDebug Level = iota
	// LevelInfo for general informational messages
	LevelInfo
	// LevelWarn for warning messages
	LevelWarn
	// LevelError for error messages
	LevelError
	// LevelNone disables all logging
	LevelNone
)

// Logger is the printf-style leveled logger consumed by pathstep packages.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// NoOp is a logger that discards everything.
type NoOp struct{}

var _ Logger = NoOp{}

// Debug does nothing
func (NoOp) Debug(string, ...any) {}

// Info does nothing
func (NoOp) Info(string, ...any) {}

// Warn does nothing
func (NoOp) Warn(string, ...any) {}

// Error does nothing
func (NoOp) Error(string, ...any) {}

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelNone:
		return "disable"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
// "none", "off" and "disable" all map to LevelNone.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none", "off", "disable":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}
