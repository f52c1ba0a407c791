package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/ui/theme"
)

type MenuItem struct {
	Label string
	// Detail is rendered dimmed after the label.
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that only rests on enabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(+1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the cursor to the next enabled item in direction dir, staying
// put when there is none.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(+1)
	case "home", "g":
		m.Selected = -1
		m.step(+1)
	case "end", "G":
		m.Selected = len(m.Items)
		m.step(-1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var (
		cursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		normal   = lipgloss.NewStyle().Foreground(theme.Text)
		disabled = lipgloss.NewStyle().Foreground(theme.Border)
		detail   = lipgloss.NewStyle().Foreground(theme.TextDim)
	)

	lines := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		var line string
		switch {
		case it.Disabled:
			line = disabled.Render("    " + it.Label)
		case i == m.Selected:
			line = cursor.Render("  ▸ " + it.Label)
		default:
			line = normal.Render("    " + it.Label)
		}
		if it.Detail != "" {
			line += "  " + detail.Render(it.Detail)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
