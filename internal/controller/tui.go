package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "covlens.dev/pkg/covlens/internal/model"
)

// TUI implements UI with an interactive pager for long uncovered-method
// listings. Everything else falls through to the plain printer so report
// text stays identical across surfaces.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a TUI wrapping the given plain printer.
func NewTUI(simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple}
}

// DisplayUncovered pages through the uncovered-method list when it does not
// fit on screen; short lists print directly.
func (t *TUI) DisplayUncovered(ctx context.Context, items []m.UncoveredItem, totalFound int, threshold float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newUncoveredModel(items, totalFound, threshold)

	output := t.cmd.OutOrStdout()
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		return t.SimpleUI.DisplayUncovered(ctx, items, totalFound, threshold)
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1)
	tuiHelpStyle   = lipgloss.NewStyle().Faint(true)
	tuiCriticalRow = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	tuiWarningRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// uncoveredModel is the Bubble Tea model paging through uncovered methods.
type uncoveredModel struct {
	items      []m.UncoveredItem
	totalFound int
	threshold  float64
	height     int
	width      int
	offset     int
	quitting   bool
}

func newUncoveredModel(items []m.UncoveredItem, totalFound int, threshold float64) uncoveredModel {
	return uncoveredModel{
		items:      items,
		totalFound: totalFound,
		threshold:  threshold,
	}
}

func (um uncoveredModel) Init() tea.Cmd {
	return nil
}

func (um uncoveredModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		um.height = msg.Height
		um.width = msg.Width

		return um, nil

	case tea.KeyMsg:
		return um.handleKeyPress(msg)
	}

	return um, nil
}

func (um uncoveredModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		um.quitting = true
		return um, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		um.quitting = true
		return um, tea.Quit

	case "down", "j":
		um.offset = clamp(um.offset+1, 0, um.maxOffset())
		return um, nil

	case "up", "k":
		um.offset = clamp(um.offset-1, 0, um.maxOffset())
		return um, nil

	case "g", "home":
		um.offset = 0
		return um, nil

	case "G", "end":
		um.offset = um.maxOffset()
		return um, nil

	case "d", "pgdown":
		um.offset = clamp(um.offset+um.itemsPerPage(), 0, um.maxOffset())
		return um, nil

	case "u", "pgup":
		um.offset = clamp(um.offset-um.itemsPerPage(), 0, um.maxOffset())
		return um, nil
	}

	return um, nil
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}

	if v > high {
		return high
	}

	return v
}

// itemsPerPage calculates how many rows fit on screen. Reserved lines:
// title block (3), summary (2), footer and help (3).
func (um uncoveredModel) itemsPerPage() int {
	if um.height == 0 {
		return 10
	}

	const reserved = 8

	available := um.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (um uncoveredModel) maxOffset() int {
	maxOff := len(um.items) - um.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination reports whether the list is too large to fit on screen.
func (um uncoveredModel) needsPagination() bool {
	if len(um.items) == 0 {
		return false
	}

	return um.height > 0 && len(um.items) > um.itemsPerPage()
}

func (um uncoveredModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("Uncovered Code Analysis"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Found %d methods with <%.0f%% coverage\n\n", um.totalFound, um.threshold)

	if len(um.items) == 0 {
		b.WriteString("No methods below the threshold\n")
		return b.String()
	}

	end := clamp(um.offset+um.itemsPerPage(), 0, len(um.items))

	for i := um.offset; i < end; i++ {
		item := um.items[i]
		row := fmt.Sprintf("%3d. %s.%s.%s  %.1f%% (%d lines missed)",
			i+1, item.Package, item.Class, item.Method, item.CoveragePercent, item.LinesMissed)

		switch {
		case item.CoveragePercent < 20:
			row = tuiCriticalRow.Render(row)
		case item.CoveragePercent < 40:
			row = tuiWarningRow.Render(row)
		}

		b.WriteString(row + "\n")
	}

	fmt.Fprintf(&b, "\n%d-%d of %d\n", um.offset+1, end, len(um.items))
	b.WriteString(tuiHelpStyle.Render("j/k scroll | d/u page | g/G jump | q quit"))
	b.WriteString("\n")

	return b.String()
}
