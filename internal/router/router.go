// Package router keeps the stack of screens the TUI navigates through.
// Screens never touch the stack directly; they return the commands built by
// Push, Pop and Replace and the app model feeds the resulting messages back
// into Router.Update.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/languify/internal/screen"
)

type (
	PushScreenMsg    struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Push returns a command that opens s above the current screen.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Pop returns a command that closes the current screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Replace returns a command that swaps the current screen for s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Router is a screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	top := len(r.stack) - 1

	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()

	case ReplaceScreenMsg:
		r.stack[top] = msg.Screen
		return msg.Screen.Init()

	case PopScreenMsg:
		if top == 0 {
			return nil
		}
		r.stack[top] = nil
		r.stack = r.stack[:top]
		if res, ok := r.Active().(screen.Resumer); ok {
			return res.Resume()
		}
		return nil
	}

	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
