package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/languify/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	resumes int
	seen    []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd { f.inits++; return nil }

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

type resumableScreen struct{ fakeScreen }

func (r *resumableScreen) Resume() tea.Cmd { r.resumes++; return nil }

func TestNavigation(t *testing.T) {
	home := &resumableScreen{fakeScreen{name: "home"}}
	r := New(home)

	lesson := &fakeScreen{name: "lesson"}
	r.Update(PushScreenMsg{Screen: lesson})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "lesson", r.View(80, 24))
	assert.Equal(t, 1, lesson.inits)

	created := &fakeScreen{name: "created"}
	r.Update(ReplaceScreenMsg{Screen: created})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "created", r.Active().Title())
	assert.Equal(t, 1, created.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
	assert.Equal(t, 1, home.resumes)

	// The root stays put.
	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 1, home.resumes)
}

func TestReplaceRoot(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})
	home := &fakeScreen{name: "home"}
	r.Update(ReplaceScreenMsg{Screen: home})

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, screen.Screen(home), r.Active())
}

func TestForwardsOtherMessages(t *testing.T) {
	root := &fakeScreen{name: "root"}
	top := &fakeScreen{name: "top"}
	r := New(root)
	r.Update(PushScreenMsg{Screen: top})

	key := tea.KeyPressMsg{Code: 'x', Text: "x"}
	assert.Nil(t, r.Update(key))
	assert.Equal(t, []tea.Msg{key}, top.seen)
	assert.Empty(t, root.seen)
}

func TestCommandHelpers(t *testing.T) {
	s := &fakeScreen{name: "s"}

	push, ok := Push(s)().(PushScreenMsg)
	require.True(t, ok)
	assert.Same(t, screen.Screen(s), push.Screen)

	replace, ok := Replace(s)().(ReplaceScreenMsg)
	require.True(t, ok)
	assert.Same(t, screen.Screen(s), replace.Screen)

	assert.Equal(t, PopScreenMsg{}, Pop()())
}
