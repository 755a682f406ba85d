package logging

import (
	"io"

	"github.com/kataras/golog"
)

const defaultPrefix = "[pathstep] "

// GologLogger implements Logger using kataras/golog.
type GologLogger struct {
	logger *golog.Logger
	level  Level
}

var _ Logger = (*GologLogger)(nil)

// New creates a golog-backed logger writing to out at the given level.
func New(out io.Writer, level Level) *GologLogger {
	gl := golog.New()
	gl.SetOutput(out)
	gl.SetPrefix(defaultPrefix)
	l := NewGologLogger(gl)
	l.SetLevel(level)

	return l
}

// NewGologLogger wraps an existing golog.Logger at LevelInfo.
func NewGologLogger(logger *golog.Logger) *GologLogger {
	return &GologLogger{
		logger: logger,
		level:  LevelInfo,
	}
}

// Debug logs debug messages
func (l *GologLogger) Debug(format string, v ...any) {
	if l.level <= LevelDebug {
		l.logger.Debugf(format, v...)
	}
}

// Info logs informational messages
func (l *GologLogger) Info(format string, v ...any) {
	if l.level <= LevelInfo {
		l.logger.Infof(format, v...)
	}
}

// Warn logs warning messages
func (l *GologLogger) Warn(format string, v ...any) {
	if l.level <= LevelWarn {
		l.logger.Warnf(format, v...)
	}
}

// Error logs error messages
func (l *GologLogger) Error(format string, v ...any) {
	if l.level <= LevelError {
		l.logger.Errorf(format, v...)
	}
}

// SetLevel sets the log level on both the wrapper and the golog logger.
func (l *GologLogger) SetLevel(level Level) {
	l.level = level
	l.logger.SetLevel(level.String())
}

// GetLevel returns the current log level
func (l *GologLogger) GetLevel() Level {
	return l.level
}
