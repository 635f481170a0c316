// Package log provides structured logging for datakit.
//
// Package: log
// Title: datakit Structured Logging
// Description: Leveled, structured logging with pluggable output formats and a
//              tight integration with the datakit error type. The CLI builds
//              one logger from configuration and passes it to every command.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Command context, deterministic field order, exit hook
//
// Features:
// - Levels trace, debug, info, warn, error, fatal and audit
// - JSON, text, console (ANSI colours) and logfmt output
// - Persistent fields and a command context shared by all entries
// - LogError maps the severity of a *mdwerror.Error onto a log level
// - Timers for measuring command execution
//
// Usage:
//
//	import mdwlog "github.com/msto63/datakit/core/log"
//
//	logger, err := mdwlog.FromSettings("debug", "console", os.Stderr)
//	if err != nil {
//		return err
//	}
//	logger = logger.WithCommand("strings slug")
//
//	timer := logger.StartTimer("slug")
//	out := stringx.ToSlug(input)
//	if out.IsErr() {
//		timer.StopWithError(out.Err())
//		logger.LogError(out.Err())
//	}
//	timer.Stop()
package log
