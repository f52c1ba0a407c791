package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	state "github.com/abhisek/languify/internal/practice"
	"github.com/abhisek/languify/internal/ui/components"
	"github.com/abhisek/languify/internal/ui/theme"
)

var allTabs = []state.Tab{state.TabVocabulary, state.TabStructure, state.TabExamples, state.TabAnswer}

func (p *PracticeScreen) View(width, height int) string {
	s := p.state
	if s.Lesson == nil {
		return components.Centered("No lesson selected.", width, height)
	}
	cw := components.ContentWidth(width)

	var sections []string

	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Translate into Spanish:") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-4).Render(s.Lesson.English)
	sections = append(sections, components.Card("", prompt, cw))

	sections = append(sections, p.input.View(cw-2))

	if s.Result != nil {
		sections = append(sections, renderResult(s, cw))
	} else {
		sections = append(sections, theme.Hint.Render("Press Enter to check your translation."))
	}

	sections = append(sections, renderTabBar(s), renderPanel(s, cw))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func renderResult(s state.State, cw int) string {
	var b strings.Builder
	b.WriteString(components.NewScoreBar(s.Result.Score, cw).View())
	if len(s.Attempts) > 1 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   attempt %d, best %d", len(s.Attempts), state.BestScore(s))))
	}
	b.WriteString("\n")

	if len(s.Result.Hints) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("¡Perfecto! No hints."))
		return b.String()
	}
	hint := lipgloss.NewStyle().Foreground(theme.Warning)
	for _, h := range s.Result.Hints {
		b.WriteString(hint.Render("• " + h))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTabBar(s state.State) string {
	available := make(map[state.Tab]bool)
	for _, t := range state.AvailableTabs(s) {
		available[t] = true
	}

	parts := make([]string, 0, len(allTabs))
	for _, t := range allTabs {
		switch {
		case t == s.Tab:
			parts = append(parts, theme.TabActive.Render(t.String()))
		case available[t]:
			parts = append(parts, theme.TabInactive.Render(t.String()))
		default:
			parts = append(parts, theme.TabLocked.Render("🔒 "+t.String()))
		}
	}
	return strings.Join(parts, " ")
}

func renderPanel(s state.State, cw int) string {
	l := s.Lesson
	var lines []string

	switch s.Tab {
	case state.TabVocabulary:
		term := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		for _, v := range l.Vocabulary {
			line := fmt.Sprintf("%s %s %s", v.English, dim.Render("→"), term.Render(v.Spanish))
			if v.Notes != "" {
				line += "  " + dim.Render("("+v.Notes+")")
			}
			lines = append(lines, line)
		}
	case state.TabStructure:
		for _, c := range l.StructureClues {
			lines = append(lines, "• "+c)
		}
	case state.TabExamples:
		for _, e := range l.Examples {
			lines = append(lines, "• "+e)
		}
	case state.TabAnswer:
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(l.CorrectAnswer))
	}

	if len(lines) == 0 {
		lines = append(lines, theme.Hint.Render("Nothing here for this lesson."))
	}
	return components.Card("", strings.Join(lines, "\n"), cw)
}
