package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/languify/internal/router"
	"github.com/abhisek/languify/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), "██") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(w, 3)
	if !strings.Contains(w.View(100, 30), "██") {
		t.Error("banner should be visible after 300ms")
	}
	if strings.Contains(w.View(100, 30), "press any key") {
		t.Error("hint should not be visible yet")
	}

	sendTicks(w, 6)
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("hint should be visible after 900ms")
	}
}

func TestCompactBanner(t *testing.T) {
	w, _ := newTestWelcome()
	sendTicks(w, 3)
	if !strings.Contains(w.View(60, 24), "L A N G U I F Y") {
		t.Error("expected compact banner on a narrow terminal")
	}
}

func TestKeypressTransitions(t *testing.T) {
	w, callCount := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Fatalf("factory called %d times, want 1", *callCount)
	}

	// Further keys and ticks do nothing.
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("second keypress should not transition again")
	}
	if cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticks after transition should stop")
	}
	if *callCount != 1 {
		t.Fatalf("factory called %d times, want 1", *callCount)
	}
}

func TestAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome()

	cmd := sendTicks(w, int(totalDur/tickInterval))
	if cmd == nil {
		t.Fatal("expected transition command after the full duration")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Fatalf("factory called %d times, want 1", *callCount)
	}
}
