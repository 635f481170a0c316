// File: level.go
// Title: Log Level Definitions
// Description: Log levels used for filtering output, plus parsing from the
//              configuration file and command line flags.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Parse errors carry the datakit error code

package log

import (
	"strings"

	mdwerror "github.com/msto63/datakit/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit entries are written regardless of the minimum level
	LevelAudit
)

var levelNames = map[Level][2]string{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
	LevelAudit: {"audit", "AUD"},
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if names, ok := levelNames[l]; ok {
		return names[0]
	}
	return "unknown"
}

// ShortString returns the three-letter tag used by the text formatters
func (l Level) ShortString() string {
	if names, ok := levelNames[l]; ok {
		return names[1]
	}
	return "???"
}

// Color returns the ANSI color code for console output
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	case LevelFatal:
		return "\033[35m"
	case LevelAudit:
		return "\033[34m"
	default:
		return colorReset
	}
}

const colorReset = "\033[0m"

// ShouldLog reports whether an entry of this level passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a level name or its short tag
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	}
	return LevelInfo, parseError("level", level)
}

// AllLevels returns all levels in ascending order
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
}

func parseError(kind, input string) *mdwerror.Error {
	return mdwerror.Newf("invalid log %s: %q", kind, input).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.parse").
		WithDetail("input", input)
}
