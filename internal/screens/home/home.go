package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/router"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/screen"
	"github.com/abhisek/languify/internal/screens/create"
	"github.com/abhisek/languify/internal/screens/history"
	"github.com/abhisek/languify/internal/screens/practice"
	"github.com/abhisek/languify/internal/store"
	"github.com/abhisek/languify/internal/ui/components"
	"github.com/abhisek/languify/internal/ui/theme"
)

// lessonsLoadedMsg carries the lesson list.
type lessonsLoadedMsg struct {
	Lessons []*lessons.Lesson
	Err     error
}

// HomeScreen lists the available lessons and the create action.
type HomeScreen struct {
	source    lessons.Source
	generator lessons.Generator
	cfg       scoring.Config
	events    store.EventRepo
	menu      components.Menu
	lessons   []*lessons.Lesson
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen. generator may be nil when no LLM provider is
// configured; lesson creation is then disabled.
func New(source lessons.Source, generator lessons.Generator, cfg scoring.Config) *HomeScreen {
	h := &HomeScreen{source: source, generator: generator, cfg: cfg}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// WithActivity adds an "LLM activity" entry backed by repo.
func (h *HomeScreen) WithActivity(repo store.EventRepo) *HomeScreen {
	h.events = repo
	h.menu = components.NewMenu(h.menuItems())
	return h
}

// Resume reloads the list so lessons created on other screens appear.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	src := h.source
	return func() tea.Msg {
		list, err := src.List(context.Background())
		return lessonsLoadedMsg{Lessons: list, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(lessonsLoadedMsg); ok {
		// A cursor placed before the first load points into a menu
		// without lessons, so only a reload keeps it.
		reload := h.loaded
		h.loaded = true
		h.errMsg = ""
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.lessons = msg.Lessons
		}
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		if reload && selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
			h.menu.Selected = selected
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.lessons)+2)
	for _, l := range h.lessons {
		lesson := l
		detail := ""
		if strings.HasPrefix(lesson.ID, "dynamic-") {
			detail = "generated"
		}
		items = append(items, components.MenuItem{
			Label:  lesson.English,
			Detail: detail,
			Action: func() tea.Cmd {
				return router.Push(practice.New(lesson, h.cfg))
			},
		})
	}

	createItem := components.MenuItem{Label: "Create a lesson"}
	if h.generator == nil {
		createItem.Disabled = true
		createItem.Detail = "needs an LLM provider"
	} else {
		gen, cfg := h.generator, h.cfg
		createItem.Action = func() tea.Cmd {
			return router.Push(create.New(gen, cfg))
		}
	}

	items = append(items, createItem)
	if h.events != nil {
		repo := h.events
		items = append(items, components.MenuItem{
			Label: "LLM activity",
			Action: func() tea.Cmd {
				return router.Push(history.New(repo))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return items
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render("Choose a sentence to translate"),
		theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d lessons", len(h.lessons))),
		"",
	)

	switch {
	case !h.loaded:
		sections = append(sections, theme.Hint.Render("Loading lessons..."))
	case h.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load lessons: "+h.errMsg))
	}

	sections = append(sections, components.Card("", strings.TrimRight(h.menu.View(), "\n"), cw))

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
