package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards so
// they line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border box with an optional title.
func Card(title, content string, cw int) string {
	body := content
	if title != "" {
		body = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title) + "\n" + content
	}
	return theme.Card.Width(cw).Render(body)
}

// Centered places content in the middle of the given area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
