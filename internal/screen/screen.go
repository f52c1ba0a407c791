// Package screen defines the contract between the router and the views it
// stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/languify/internal/ui/layout"
)

// Screen is a full-window view. View receives the space left between the
// app header and footer; Title is shown in the header.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider overrides the footer's default key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is notified when the screen above it is popped.
type Resumer interface {
	Resume() tea.Cmd
}
