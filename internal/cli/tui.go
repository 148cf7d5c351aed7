package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphlayout/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EnginePickerModel - Interactive engine selection
// =============================================================================

// EnginePickerModel is the bubbletea model for interactive engine selection.
type EnginePickerModel struct {
	Engines  []layout.EngineInfo
	Cursor   int
	Selected *layout.EngineInfo
}

// NewEnginePickerModel creates a picker with the cursor on current, or on
// the first engine when current is not listed.
func NewEnginePickerModel(engines []layout.EngineInfo, current string) EnginePickerModel {
	m := EnginePickerModel{Engines: engines}
	for i, e := range engines {
		if e.Name == current {
			m.Cursor = i
		}
	}
	return m
}

func (m EnginePickerModel) Init() tea.Cmd {
	return nil
}

func (m EnginePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Engines)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Engines) == 0 {
				return m, tea.Quit
			}
			m.Selected = &m.Engines[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m EnginePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Engine"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, e := range m.Engines {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, e.Name, listDimStyle.Render(e.Description))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		if e.Requires != "" {
			b.WriteString(StyleWarning.Render("  needs " + e.Requires))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickEngine runs the picker and returns the chosen engine name. ok is
// false when the user quit without choosing.
func pickEngine(current string) (name string, ok bool, err error) {
	final, err := tea.NewProgram(NewEnginePickerModel(layout.Engines(), current)).Run()
	if err != nil {
		return "", false, fmt.Errorf("engine picker: %w", err)
	}
	m, _ := final.(EnginePickerModel)
	if m.Selected == nil {
		return "", false, nil
	}
	return m.Selected.Name, true, nil
}
