// Package practice is the screen where the learner translates one lesson.
package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/languify/internal/lessons"
	state "github.com/abhisek/languify/internal/practice"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/screen"
	"github.com/abhisek/languify/internal/ui/components"
	"github.com/abhisek/languify/internal/ui/layout"
)

// PracticeScreen shows a lesson prompt, takes the learner's translation and
// renders the score with the panels it unlocks.
type PracticeScreen struct {
	state state.State
	cfg   scoring.Config
	input components.TextInput
	now   func() time.Time
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for lesson.
func New(lesson *lessons.Lesson, cfg scoring.Config) *PracticeScreen {
	return &PracticeScreen{
		state: state.New(lesson),
		cfg:   cfg,
		input: components.NewTextInput("Escribe tu traducción...", lessons.MaxInputLength),
		now:   time.Now,
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Tab", Description: "Next panel"},
		{Key: "Esc", Description: "Back"},
	}
}

// State exposes the current practice state.
func (p *PracticeScreen) State() state.State {
	return p.state
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			p.state = state.Submit(p.state, p.cfg, p.now())
			return p, nil
		case "tab":
			p.state = state.NextTab(p.state)
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.state = state.SetInput(p.state, p.input.Value())
	return p, cmd
}
