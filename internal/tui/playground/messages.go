// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     playground
// Description: Message types for async operations in the playground
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package playground

import "github.com/msto63/datakit/internal/tui/breakpoint"

// ReloadFunc loads the breakpoint configuration again
type ReloadFunc func() ([]breakpoint.Breakpoint, error)

// reloadedMsg is sent when a configuration reload finished
type reloadedMsg struct {
	breakpoints []breakpoint.Breakpoint
	err         error
}
