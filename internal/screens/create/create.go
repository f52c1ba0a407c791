// Package create is the screen that turns an English sentence into a new
// lesson through the lesson generator.
package create

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/router"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/screen"
	"github.com/abhisek/languify/internal/screens/practice"
	"github.com/abhisek/languify/internal/ui/components"
	"github.com/abhisek/languify/internal/ui/layout"
	"github.com/abhisek/languify/internal/ui/theme"
)

// generatedMsg carries the result of a generation request.
type generatedMsg struct {
	Lesson *lessons.Lesson
	Err    error
}

// CreateScreen collects English text and generates a lesson from it.
type CreateScreen struct {
	generator  lessons.Generator
	cfg        scoring.Config
	input      components.TextInput
	spinner    spinner.Model
	generating bool
	errMsg     string
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)

// New creates the screen. Generated lessons open in a practice screen
// scored with cfg.
func New(generator lessons.Generator, cfg scoring.Config) *CreateScreen {
	return &CreateScreen{
		generator: generator,
		cfg:       cfg,
		input:     components.NewTextInput("Type an English sentence...", lessons.MaxInputLength),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (c *CreateScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CreateScreen) Title() string {
	return "New Lesson"
}

func (c *CreateScreen) KeyHints() []layout.KeyHint {
	if c.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		c.generating = false
		if msg.Err != nil {
			c.errMsg = describeError(msg.Err)
			return c, c.input.Focus()
		}
		return c, router.Replace(practice.New(msg.Lesson, c.cfg))

	case spinner.TickMsg:
		if !c.generating {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyPressMsg:
		if c.generating {
			return c, nil
		}
		if msg.String() == "enter" {
			return c.submit()
		}
		c.errMsg = ""
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *CreateScreen) submit() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		c.errMsg = "Type a sentence first."
		return c, nil
	}

	c.generating = true
	c.errMsg = ""
	c.input.Blur()

	gen := c.generator
	return c, tea.Batch(
		func() tea.Msg {
			lesson, err := gen.Generate(context.Background(), text)
			return generatedMsg{Lesson: lesson, Err: err}
		},
		c.spinner.Tick,
	)
}

func (c *CreateScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Width(cw).Render("Create a lesson"),
		theme.Subtitle.Width(cw).Render("Write something in English. It is translated and annotated for practice."),
		"",
		c.input.View(cw - 2),
	}

	switch {
	case c.generating:
		sections = append(sections, c.spinner.View()+" "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Translating and building your lesson..."))
	case c.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(c.errMsg))
	}

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

func describeError(err error) string {
	var genErr *lessons.GenerationError
	switch {
	case errors.Is(err, lessons.ErrInvalidInput):
		return err.Error()
	case errors.As(err, &genErr) && genErr.Stage == lessons.StageTranslate:
		return "Translation service failed: " + genErr.Err.Error()
	case llm.IsKind(err, llm.KindRateLimited):
		return "The LLM provider is rate limiting requests. Try again in a minute."
	case llm.IsKind(err, llm.KindUnavailable):
		return "The LLM provider could not be reached. Check your connection and try again."
	case errors.As(err, &genErr):
		return "Could not build the lesson (" + genErr.Stage + "): " + genErr.Err.Error()
	default:
		return err.Error()
	}
}
