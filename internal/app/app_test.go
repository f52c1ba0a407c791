package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/router"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/screens/home"
	"github.com/abhisek/languify/internal/screens/practice"
)

func testModel() AppModel {
	return newAppModel(Options{
		Lessons: lessons.NewLibrary(nil),
		Scoring: scoring.DefaultConfig(),
	})
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	m := sized(testModel())
	require.NotNil(t, m.Init(), "welcome screen should start its animation")
	assert.Equal(t, 1, m.router.Depth())
	assert.Contains(t, m.render(), "EN → ES")
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m := sized(testModel())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc at the root is a no-op")

	lesson, _ := lessons.CatalogLesson("basic-greeting")
	m.Update(router.PushScreenMsg{Screen: practice.New(lesson, scoring.DefaultConfig())})
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := sized(testModel())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_FooterUsesScreenHints(t *testing.T) {
	m := sized(testModel())
	m.Update(router.ReplaceScreenMsg{Screen: home.New(lessons.NewLibrary(nil), nil, scoring.DefaultConfig())})
	assert.Contains(t, m.render(), "Navigate")

	lesson, _ := lessons.CatalogLesson("basic-greeting")
	m.Update(router.PushScreenMsg{Screen: practice.New(lesson, scoring.DefaultConfig())})
	view := m.render()
	assert.Contains(t, view, "Practice")
	assert.True(t, strings.Contains(view, "Tab"), "practice footer should list the tab key")
}

func TestAppModel_TooSmall(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.NotContains(t, next.(AppModel).render(), "EN → ES")
}
