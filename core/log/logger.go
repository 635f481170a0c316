// File: logger.go
// Title: Core Logger Implementation
// Description: The Logger type: immutable configuration via With* methods,
//              leveled output, and mapping of datakit errors onto levels.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: FromSettings, command context, removed async buffer

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/datakit/core/error"
)

// exitFunc is replaced in tests
var (
	osExit   = os.Exit
	exitFunc = osExit
)

// Logger writes structured entries to an output
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	command   string

	contextFields Fields

	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
}

// Config is the full logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a logger writing console output at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole})
}

// NewWithConfig creates a logger from an explicit configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:            config.Level,
		formatter:        GetFormatter(config.Format),
		output:           output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}
}

// FromSettings builds a logger from the textual level and format found in
// configuration files and flags.
func FromSettings(level, format string, output io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	fmtKind, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(Config{Level: lvl, Format: fmtKind, Output: output, Name: "datakit"}), nil
}

// WithLevel returns a copy with another minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a copy using the default formatter of format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	return l.derive(func(c *Logger) { c.formatter = formatter })
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.output = output })
}

// WithName returns a copy with another logger name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithCommand returns a copy tagging every entry with the CLI command
func (l *Logger) WithCommand(command string) *Logger {
	return l.derive(func(c *Logger) { c.command = command })
}

// WithField returns a copy carrying a persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.contextFields[key] = value })
}

// WithFields returns a copy carrying persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) {
		for k, v := range fields {
			c.contextFields[k] = v
		}
	})
}

// WithCaller returns a copy that records the calling location
func (l *Logger) WithCaller(skip int) *Logger {
	return l.derive(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields...) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }
func (l *Logger) Audit(message string, fields ...Fields) { l.log(LevelAudit, message, nil, fields...) }

// Fatal logs at fatal level and terminates the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	exitFunc(1)
}

// ErrorWithErr logs an error level entry carrying err
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warn level entry carrying err
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Details of a
// *mdwerror.Error are flattened into error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var dkErr *mdwerror.Error
	if !errors.As(err, &dkErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     dkErr.Code().String(),
		"error_severity": dkErr.Severity().String(),
	}
	if op := dkErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range dkErr.Details() {
		fields["error_"+k] = v
	}

	l.log(LevelForSeverity(dkErr.Severity()), err.Error(), err, fields)
}

// LevelForSeverity maps an error severity onto a log level
func LevelForSeverity(severity mdwerror.Severity) Level {
	switch severity {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer starts a timer logging through this logger
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether entries of level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the minimum level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.logEntry(level, message, err, 0, fields...)
}

func (l *Logger) logEntry(level Level, message string, err error, elapsed time.Duration, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Command = l.command
	entry.Error = err
	entry.Duration = elapsed
	entry.WithFields(l.contextFields)
	for _, set := range fields {
		entry.WithFields(set)
	}

	if l.enableCaller {
		if function, file, line, ok := caller(4 + l.callerSkipFrames); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatter, output := l.formatter, l.output
	l.mutex.RUnlock()

	if formatted, formatErr := formatter.Format(entry); formatErr == nil {
		_, _ = output.Write(formatted)
	}
}

func caller(skip int) (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	return function, filepath.Base(file), line, true
}

func (l *Logger) derive(apply func(*Logger)) *Logger {
	l.mutex.RLock()
	clone := &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		command:          l.command,
		contextFields:    l.contextFields.Clone(),
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
	}
	l.mutex.RUnlock()
	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	apply(clone)
	return clone
}

var (
	defaultLogger = New()
	defaultMutex  sync.RWMutex
)

// GetDefault returns the package level logger
func GetDefault() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package level logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMutex.Lock()
	defaultLogger = logger
	defaultMutex.Unlock()
}

func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }
func Info(message string, fields ...Fields)  { GetDefault().Info(message, fields...) }
func Warn(message string, fields ...Fields)  { GetDefault().Warn(message, fields...) }
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
