// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     render
// Description: Output rendering for the datakit CLI (lipgloss, YAML, JSON)
// Author:      Mike Stoffels
// Created:     2026-09-22
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/datakit/core/error"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/utils/slicex"
	"github.com/msto63/datakit/utils/typex"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 100

// Styles
var (
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	GroupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Options configures a Renderer
type Options struct {
	Out         io.Writer
	Err         io.Writer
	JSON        bool
	Width       int
	Breakpoints []breakpoint.Breakpoint
}

// Row is one line of a key/value table
type Row struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Renderer writes command results in text or JSON form. The text layout
// follows the breakpoint of the output width.
type Renderer struct {
	out     io.Writer
	err     io.Writer
	json    bool
	checker *breakpoint.Checker
}

// New creates a renderer. A zero Width is detected from the terminal.
func New(opts Options) (*Renderer, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if len(opts.Breakpoints) == 0 {
		opts.Breakpoints = breakpoint.Defaults()
	}
	if opts.Width <= 0 {
		opts.Width = TerminalWidth(opts.Out, DefaultWidth)
	}

	checker, err := breakpoint.New(opts.Breakpoints)
	if err != nil {
		return nil, err
	}
	checker.Update(opts.Width)
	return &Renderer{out: opts.Out, err: opts.Err, json: opts.JSON, checker: checker}, nil
}

// TerminalWidth returns the column count of w when it is a terminal, and
// fallback otherwise
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Layout returns the name of the active breakpoint
func (r *Renderer) Layout() string {
	if b, ok := r.checker.Current(); ok {
		return b.Name
	}
	return ""
}

// Compact reports whether the narrow layout is used
func (r *Renderer) Compact() bool {
	return r.checker.Is("sm")
}

// Value renders a single value. Strings print as they are, slices one item
// per line and objects as YAML.
func (r *Renderer) Value(v any) error {
	if r.json {
		return r.writeJSON(map[string]any{"ok": true, "value": v})
	}
	text, err := r.text(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, text)
	return err
}

// Table renders rows with aligned keys, or stacked on narrow terminals
func (r *Renderer) Table(rows []Row) error {
	if r.json {
		return r.writeJSON(map[string]any{"ok": true, "value": rows})
	}

	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
	}

	var b strings.Builder
	for _, row := range rows {
		value := fmt.Sprint(row.Value)
		if r.Compact() {
			b.WriteString(KeyStyle.Render(row.Key) + "\n  " + value + "\n")
			continue
		}
		b.WriteString(KeyStyle.Width(keyWidth+2).Render(row.Key) + value + "\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Groups renders grouping results
func (r *Renderer) Groups(groups []slicex.Group) error {
	if r.json {
		return r.writeJSON(map[string]any{"ok": true, "value": groups})
	}

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(GroupStyle.Render(fmt.Sprint(g.Key)))
		b.WriteString(MutedStyle.Render(fmt.Sprintf(" (%d)", len(g.Items))))
		b.WriteString("\n")
		for _, item := range g.Items {
			text, err := r.text(item)
			if err != nil {
				return err
			}
			b.WriteString(indent(text, "  - ", "    "))
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Failure writes err to the error output. Structured errors contribute
// their code in JSON mode.
func (r *Renderer) Failure(err error) {
	if r.json {
		payload := map[string]any{"ok": false, "error": err.Error()}
		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) {
			payload["code"] = mdwErr.Code()
		}
		data, _ := json.Marshal(payload)
		fmt.Fprintln(r.err, string(data))
		return
	}
	fmt.Fprintln(r.err, ErrorStyle.Render("Fehler:")+" "+err.Error())
}

// Print unwraps res and renders its value. A failure is returned unprinted.
func Print[T any](r *Renderer, res result.Result[T]) error {
	v, err := res.Unwrap()
	if err != nil {
		return err
	}
	return r.Value(v)
}

func (r *Renderer) text(v any) (string, error) {
	switch {
	case typex.IsNullish(v):
		return "null", nil
	case typex.IsString(v), typex.IsBoolean(v), typex.IsNumber(v), typex.IsDate(v), typex.IsBigInt(v):
		return fmt.Sprint(v), nil
	case typex.IsArray(v) && isScalarList(v):
		return strings.TrimSuffix(listLines(v), "\n"), nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot render value").WithCode(mdwerror.CodeInternal)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isScalarList(v any) bool {
	for _, item := range listItems(v) {
		switch typex.KindOf(item) {
		case typex.KindArray, typex.KindObject, typex.KindOther:
			return false
		}
	}
	return true
}

func listItems(v any) []any {
	rv := reflect.ValueOf(v)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

func listLines(v any) string {
	var b strings.Builder
	for _, item := range listItems(v) {
		b.WriteString(fmt.Sprint(item))
		b.WriteString("\n")
	}
	return b.String()
}

func indent(text, first, rest string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
