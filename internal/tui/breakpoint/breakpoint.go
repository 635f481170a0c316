// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     breakpoint
// Description: Responsive breakpoint checker driven by the terminal width
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package breakpoint

import (
	"fmt"
	"slices"

	mdwerror "github.com/msto63/datakit/core/error"
)

// Breakpoint is a named width range. Min is inclusive, Max exclusive; a Max
// of zero leaves the range open.
type Breakpoint struct {
	Name string `config:"name" json:"name"`
	Min  int    `config:"min" json:"min"`
	Max  int    `config:"max" json:"max"`
}

// Contains reports whether width falls into the range
func (b Breakpoint) Contains(width int) bool {
	return width >= b.Min && (b.Max == 0 || width < b.Max)
}

// String renders the range, e.g. "md 80-119" or "lg 120+"
func (b Breakpoint) String() string {
	if b.Max == 0 {
		return fmt.Sprintf("%s %d+", b.Name, b.Min)
	}
	return fmt.Sprintf("%s %d-%d", b.Name, b.Min, b.Max-1)
}

// Defaults returns the standard terminal breakpoints
func Defaults() []Breakpoint {
	return []Breakpoint{
		{Name: "sm", Min: 0, Max: 80},
		{Name: "md", Min: 80, Max: 120},
		{Name: "lg", Min: 120},
	}
}

// Checker tracks which breakpoint the current width falls into
type Checker struct {
	breakpoints []Breakpoint
	width       int
	current     int
}

// New validates breakpoints and returns a checker ordered by Min. Names must
// be unique and non-empty, Min must not be negative and Max must be zero or
// greater than Min.
func New(breakpoints []Breakpoint) (*Checker, error) {
	if len(breakpoints) == 0 {
		return nil, invalid("no breakpoints defined", nil)
	}

	seen := make(map[string]bool, len(breakpoints))
	for _, b := range breakpoints {
		switch {
		case b.Name == "":
			return nil, invalid("breakpoint without name", b)
		case seen[b.Name]:
			return nil, invalid(fmt.Sprintf("duplicate breakpoint %q", b.Name), b)
		case b.Min < 0:
			return nil, invalid(fmt.Sprintf("breakpoint %q has negative min", b.Name), b)
		case b.Max != 0 && b.Max <= b.Min:
			return nil, invalid(fmt.Sprintf("breakpoint %q has max not above min", b.Name), b)
		}
		seen[b.Name] = true
	}

	sorted := slices.Clone(breakpoints)
	slices.SortStableFunc(sorted, func(a, b Breakpoint) int {
		return a.Min - b.Min
	})
	return &Checker{breakpoints: sorted, current: -1}, nil
}

func invalid(msg string, b any) error {
	err := mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("breakpoint.new")
	if b != nil {
		err = err.WithDetail("breakpoint", b)
	}
	return err
}

// Update records a new width. It reports whether the active breakpoint
// changed.
func (c *Checker) Update(width int) bool {
	c.width = width
	next := -1
	for i, b := range c.breakpoints {
		if b.Contains(width) {
			next = i
			break
		}
	}
	changed := next != c.current
	c.current = next
	return changed
}

// Width returns the last width passed to Update
func (c *Checker) Width() int {
	return c.width
}

// Current returns the active breakpoint. The boolean is false before the
// first Update and when the width lies in a gap between ranges.
func (c *Checker) Current() (Breakpoint, bool) {
	if c.current < 0 {
		return Breakpoint{}, false
	}
	return c.breakpoints[c.current], true
}

// Is reports whether name is the active breakpoint
func (c *Checker) Is(name string) bool {
	b, ok := c.Current()
	return ok && b.Name == name
}

// Matches reports whether width would fall into the breakpoint name, without
// changing the checker
func (c *Checker) Matches(name string, width int) bool {
	for _, b := range c.breakpoints {
		if b.Name == name {
			return b.Contains(width)
		}
	}
	return false
}

// Breakpoints returns the breakpoints ordered by Min
func (c *Checker) Breakpoints() []Breakpoint {
	return slices.Clone(c.breakpoints)
}
