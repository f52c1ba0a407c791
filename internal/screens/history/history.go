package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/screen"
	"github.com/abhisek/languify/internal/store"
	"github.com/abhisek/languify/internal/ui/layout"
	"github.com/abhisek/languify/internal/ui/theme"
)

// eventLimit caps how many recent events are loaded.
const eventLimit = 50

type eventsLoadedMsg struct {
	Events []store.LLMEvent
	Err    error
}

// HistoryScreen lists recent LLM calls made while generating lessons and
// critiques.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.LLMEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Limit: eventLimit})
		return eventsLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "LLM Activity"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).Render("\n\n  Loading activity...")
	}
	if len(s.events) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No LLM calls yet. Create a lesson to see one here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		status := "✓"
		if !e.Success {
			status = "✗"
		}

		line := fmt.Sprintf("%s%s  %s  %-15s  %s  %dms",
			prefix, status, e.Timestamp.Local().Format("Jan 02 15:04"), e.Purpose, e.Model, e.LatencyMs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case !e.Success:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			for _, detail := range details(e) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func details(e store.LLMEvent) []string {
	out := []string{
		fmt.Sprintf("%s · %d in / %d out tokens", e.Provider, e.InputTokens, e.OutputTokens),
	}
	if cost := llm.LookupCost(e.Model); cost != nil {
		out = append(out, fmt.Sprintf("≈ $%.4f", cost.Cost(e.InputTokens, e.OutputTokens)))
	}
	if e.ErrorMessage != "" {
		out = append(out, "Error: "+e.ErrorMessage)
	}
	return out
}
