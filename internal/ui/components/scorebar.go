package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/ui/theme"
)

// ScoreBar displays a 0-100 score as a horizontal bar.
type ScoreBar struct {
	Score int
	Width int
}

// NewScoreBar creates a score bar of the given total width.
func NewScoreBar(score, width int) ScoreBar {
	return ScoreBar{Score: score, Width: width}
}

// View renders the bar followed by the numeric score.
func (p ScoreBar) View() string {
	label := theme.ScoreColor(p.Score).Render(fmt.Sprintf("%3d/100", p.Score))

	barWidth := max(p.Width-lipgloss.Width(label)-2, 4)
	filled := min(max(barWidth*p.Score/100, 0), barWidth)

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return filledStr + emptyStr + "  " + label
}
