package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func pagerItems(n int) []m.UncoveredItem {
	items := make([]m.UncoveredItem, n)
	for i := range items {
		items[i] = m.UncoveredItem{Package: "p", Class: "C", Method: "m", CoveragePercent: float64(i)}
	}

	return items
}

func TestNewUI_SelectsByTerminal(t *testing.T) {
	cmd := &cobra.Command{}

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	require.True(t, isSimple)

	_, isTUI := NewUI(cmd, true).(*TUI)
	require.True(t, isTUI)
}

func TestUncoveredModel_NeedsPagination(t *testing.T) {
	model := newUncoveredModel(pagerItems(50), 50, 50)
	require.False(t, model.needsPagination(), "unknown height never paginates")

	model.height = 20
	require.True(t, model.needsPagination())

	model = newUncoveredModel(pagerItems(3), 3, 50)
	model.height = 20
	require.False(t, model.needsPagination())
}

func TestUncoveredModel_ScrollClamps(t *testing.T) {
	model := newUncoveredModel(pagerItems(30), 30, 50)
	model.height = 18 // 10 items per page

	updated, _ := model.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	require.Zero(t, updated.(uncoveredModel).offset, "scrolling up at the top stays at zero")

	updated, _ = model.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	require.Equal(t, 20, updated.(uncoveredModel).offset)

	bottom := updated.(uncoveredModel)
	updated, _ = bottom.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 20, updated.(uncoveredModel).offset, "scrolling past the end clamps")

	updated, _ = bottom.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.Zero(t, updated.(uncoveredModel).offset)
}

func TestUncoveredModel_PageKeys(t *testing.T) {
	model := newUncoveredModel(pagerItems(30), 30, 50)
	model.height = 18

	updated, _ := model.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.Equal(t, 10, updated.(uncoveredModel).offset)

	updated, _ = updated.(uncoveredModel).handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	require.Zero(t, updated.(uncoveredModel).offset)
}

func TestUncoveredModel_QuitKeys(t *testing.T) {
	model := newUncoveredModel(pagerItems(5), 5, 50)

	updated, cmd := model.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, updated.(uncoveredModel).quitting)
	require.NotNil(t, cmd)

	updated, cmd = model.handleKeyPress(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, updated.(uncoveredModel).quitting)
	require.NotNil(t, cmd)
}

func TestUncoveredModel_ViewShowsWindow(t *testing.T) {
	model := newUncoveredModel(pagerItems(30), 30, 50)
	model.height = 18
	model.offset = 10

	view := model.View()

	require.Contains(t, view, "Found 30 methods with <50% coverage")
	require.Contains(t, view, "11-20 of 30")
	require.Contains(t, view, "j/k scroll")
}

func TestUncoveredModel_ViewEmpty(t *testing.T) {
	model := newUncoveredModel(nil, 0, 50)

	require.Contains(t, model.View(), "No methods below the threshold")
}
