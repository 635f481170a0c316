// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     playground
// Description: Main Bubbletea model for the datakit playground
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/internal/tui/focus"
	"github.com/msto63/datakit/utils/stringx"
)

// Focusable element IDs
const (
	FocusInput     = "input"
	FocusOperation = "operation"
)

// Config holds playground configuration
type Config struct {
	Breakpoints []breakpoint.Breakpoint
	Capitalize  stringx.CapitalizeMode
	Reload      ReloadFunc
	Logger      *log.Logger
}

// Model is the main Bubbletea model for the playground
type Model struct {
	// State
	width  int
	height int
	status string
	err    error

	// Components
	input textinput.Model
	help  help.Model
	keys  keyMap

	// Stateful helpers
	focus      *focus.Ring
	checker    *breakpoint.Checker
	operations []Operation
	selected   int

	reload ReloadFunc
	logger *log.Logger
}

// New creates a playground model. Invalid breakpoints fall back to the
// defaults.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	logger = logger.WithName("playground")

	checker, err := breakpoint.New(cfg.Breakpoints)
	if err != nil {
		if len(cfg.Breakpoints) > 0 {
			logger.WarnWithErr("Ungültige Breakpoints, verwende Standardwerte", err)
		}
		checker, _ = breakpoint.New(breakpoint.Defaults())
	}

	ti := textinput.New()
	ti.Placeholder = "Text eingeben..."
	ti.CharLimit = 500
	ti.Focus()

	return Model{
		input:      ti,
		help:       help.New(),
		keys:       defaultKeyMap(),
		focus:      focus.New(FocusInput, FocusOperation),
		checker:    checker,
		operations: Operations(cfg.Capitalize),
		reload:     cfg.Reload,
		logger:     logger,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.checker.Update(msg.Width) {
			if b, ok := m.checker.Current(); ok {
				m.logger.Debug("Breakpoint gewechselt", log.Fields{"breakpoint": b.Name, "width": msg.Width})
			}
		}
		m.input.Width = m.inputWidth()
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "Neuladen fehlgeschlagen"
			m.logger.ErrorWithErr("Konfiguration konnte nicht geladen werden", msg.err)
			return m, nil
		}
		checker, err := breakpoint.New(msg.breakpoints)
		if err != nil {
			m.err = err
			m.status = "Ungültige Breakpoints"
			return m, nil
		}
		checker.Update(m.width)
		m.checker = checker
		m.err = nil
		m.status = fmt.Sprintf("%d Breakpoints geladen", len(msg.breakpoints))
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus.IsFocused(FocusInput) {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.focus.Next()
		return m, m.syncFocus()

	case key.Matches(msg, m.keys.Prev):
		m.focus.Prev()
		return m, m.syncFocus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			m.status = "Keine Konfigurationsdatei"
			return m, nil
		}
		m.status = "Lade Konfiguration..."
		return m, m.loadBreakpoints

	case m.focus.IsFocused(FocusOperation) && key.Matches(msg, m.keys.Up):
		m.selected = (m.selected - 1 + len(m.operations)) % len(m.operations)
		return m, nil

	case m.focus.IsFocused(FocusOperation) && key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % len(m.operations)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus.IsFocused(FocusInput) {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncFocus() tea.Cmd {
	if m.focus.IsFocused(FocusInput) {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) loadBreakpoints() tea.Msg {
	breakpoints, err := m.reload()
	return reloadedMsg{breakpoints: breakpoints, err: err}
}

// Selected returns the selected operation
func (m Model) Selected() Operation {
	return m.operations[m.selected]
}

// Focused returns the ID of the focused element
func (m Model) Focused() string {
	return m.focus.Current()
}

// Breakpoint returns the name of the active breakpoint, or "" before the
// first window size message
func (m Model) Breakpoint() string {
	if b, ok := m.checker.Current(); ok {
		return b.Name
	}
	return ""
}

// Output applies the selected operation to the current input
func (m Model) Output() result.Result[string] {
	return m.Selected().Apply(m.input.Value())
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Lade Playground..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	bp := "?"
	if b, ok := m.checker.Current(); ok {
		bp = b.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		BreakpointStyle.Render(fmt.Sprintf("[%s @ %d]", bp, m.width)),
	)
}

// renderBody stacks the panels on narrow terminals and puts them side by
// side otherwise
func (m Model) renderBody() string {
	inputPanel := m.panel(FocusInput, "Eingabe", m.input.View()+"\n\n"+m.renderOutput())
	menuPanel := m.panel(FocusOperation, "Operation", m.renderMenu())

	if m.checker.Is("sm") {
		return lipgloss.JoinVertical(lipgloss.Left, inputPanel, menuPanel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, menuPanel, " ", inputPanel)
}

func (m Model) panel(id, title, content string) string {
	style := PanelStyle
	if m.focus.IsFocused(id) {
		style = FocusedPanelStyle
	}
	return style.Render(PanelTitleStyle.Render(title) + "\n" + content)
}

func (m Model) renderMenu() string {
	lines := make([]string, len(m.operations))
	for i, op := range m.operations {
		if i == m.selected {
			lines[i] = SelectedMenuItemStyle.Render("▸ " + op.Name)
		} else {
			lines[i] = MenuItemStyle.Render(op.Name)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOutput() string {
	return result.Match(m.Output(),
		func(s string) string { return OkStyle.Render("→ " + s) },
		func(err error) string { return ErrStyle.Render("✗ " + err.Error()) },
	)
}

func (m Model) renderStatusBar() string {
	status := m.status
	if m.err != nil {
		status = ErrStyle.Render(status + ": " + m.err.Error())
	}
	if status == "" {
		status = "Bereit"
	}
	return StatusBarStyle.Width(m.width).Render(stringx.Truncate(status, max(m.width-2, 1), "…"))
}

func (m Model) inputWidth() int {
	if m.checker.Is("sm") || m.width == 0 {
		return max(m.width-8, 10)
	}
	return max(m.width/2-8, 10)
}

// Run starts the playground in the terminal
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
