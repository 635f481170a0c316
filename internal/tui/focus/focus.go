// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     focus
// Description: Focus ring for keyboard navigation between TUI elements
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package focus

import "github.com/msto63/datakit/utils/slicex"

// Ring cycles keyboard focus through a fixed list of element IDs. It is
// owned by a single bubbletea model and only changed inside Update.
type Ring struct {
	ids   []string
	index int
}

// New creates a ring focused on the first ID. Duplicate IDs are dropped.
func New(ids ...string) *Ring {
	return &Ring{ids: slicex.Uniq(ids)}
}

// Len returns the number of focusable elements
func (r *Ring) Len() int {
	return len(r.ids)
}

// IDs returns a copy of the focusable IDs in ring order
func (r *Ring) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Current returns the focused ID, or "" for an empty ring
func (r *Ring) Current() string {
	if len(r.ids) == 0 {
		return ""
	}
	return r.ids[r.index]
}

// Next moves focus forward, wrapping at the end
func (r *Ring) Next() string {
	return r.move(1)
}

// Prev moves focus backward, wrapping at the start
func (r *Ring) Prev() string {
	return r.move(-1)
}

func (r *Ring) move(step int) string {
	if len(r.ids) == 0 {
		return ""
	}
	r.index = (r.index + step + len(r.ids)) % len(r.ids)
	return r.ids[r.index]
}

// Focus moves focus to id. It returns false and leaves focus unchanged when
// id is not part of the ring.
func (r *Ring) Focus(id string) bool {
	for i, candidate := range r.ids {
		if candidate == id {
			r.index = i
			return true
		}
	}
	return false
}

// IsFocused reports whether id holds the focus
func (r *Ring) IsFocused(id string) bool {
	return len(r.ids) > 0 && r.ids[r.index] == id
}

// Reset focuses the first element again
func (r *Ring) Reset() {
	r.index = 0
}
