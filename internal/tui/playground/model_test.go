package playground

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/utils/stringx"
)

func newTestModel(t *testing.T, cfg Config) (Model, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cfg.Logger = log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: buf})
	return New(cfg), buf
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func typeText(t *testing.T, m Model, text string) Model {
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestBreakpointFollowsWindowSize(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	assert.Equal(t, "", m.Breakpoint())
	assert.Equal(t, "Lade Playground...", m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, "sm", m.Breakpoint())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, "md", m.Breakpoint())

	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 30})
	assert.Equal(t, "lg", m.Breakpoint())
	assert.Contains(t, m.View(), "lg 120+")
}

func TestInvalidBreakpointsFallBackToDefaults(t *testing.T) {
	m, buf := newTestModel(t, Config{Breakpoints: []breakpoint.Breakpoint{{Name: "", Min: 0}}})
	m = update(t, m, tea.WindowSizeMsg{Width: 90})
	assert.Equal(t, "md", m.Breakpoint())
	assert.Contains(t, buf.String(), "Ungültige Breakpoints")
}

func TestFocusAndOperationSelection(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100})
	assert.Equal(t, FocusInput, m.Focused())
	assert.Equal(t, "slug", m.Selected().Name)

	// arrows do not change the operation while the input is focused
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "slug", m.Selected().Name)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusOperation, m.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "title", m.Selected().Name)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "kind", m.Selected().Name)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusInput, m.Focused())
}

func TestOutputAppliesSelectedOperation(t *testing.T) {
	m, _ := newTestModel(t, Config{Capitalize: stringx.CapitalizeWords})
	m = update(t, m, tea.WindowSizeMsg{Width: 100})
	m = typeText(t, m, "Bread And Butter")

	assert.Equal(t, "bread-and-butter", m.Output().MustUnwrap())
	assert.Contains(t, m.View(), "bread-and-butter")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "capitalize", m.Selected().Name)
	assert.Equal(t, "Bread And Butter", m.Output().MustUnwrap())
}

func TestReload(t *testing.T) {
	t.Run("without reload function", func(t *testing.T) {
		m, _ := newTestModel(t, Config{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		assert.Nil(t, cmd)
	})

	t.Run("new breakpoints", func(t *testing.T) {
		custom := []breakpoint.Breakpoint{{Name: "compact", Min: 0, Max: 200}, {Name: "huge", Min: 200}}
		m, _ := newTestModel(t, Config{Reload: func() ([]breakpoint.Breakpoint, error) { return custom, nil }})
		m = update(t, m, tea.WindowSizeMsg{Width: 150})
		assert.Equal(t, "lg", m.Breakpoint())

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		require.NotNil(t, cmd)
		m = update(t, next.(Model), cmd())
		assert.Equal(t, "compact", m.Breakpoint())
		assert.Contains(t, m.View(), "2 Breakpoints geladen")
	})

	t.Run("failure keeps breakpoints", func(t *testing.T) {
		m, buf := newTestModel(t, Config{Reload: func() ([]breakpoint.Breakpoint, error) {
			return nil, errors.New("datei fehlt")
		}})
		m = update(t, m, tea.WindowSizeMsg{Width: 150})

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		m = update(t, next.(Model), cmd())
		assert.Equal(t, "lg", m.Breakpoint())
		assert.Contains(t, buf.String(), "datei fehlt")
	})
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
