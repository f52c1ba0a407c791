package practice

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/languify/internal/lessons"
	state "github.com/abhisek/languify/internal/practice"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/screen"
)

func testScreen(t *testing.T) *PracticeScreen {
	t.Helper()
	lesson, ok := lessons.CatalogLesson("basic-greeting")
	if !ok {
		t.Fatal("catalog lesson missing")
	}
	p := New(lesson, scoring.DefaultConfig())
	p.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return p
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func press(s screen.Screen, code rune) screen.Screen {
	s, _ = s.Update(tea.KeyPressMsg{Code: code})
	return s
}

func TestPracticeScreen_Title(t *testing.T) {
	if got := testScreen(t).Title(); got != "Practice" {
		t.Errorf("Title = %q, want %q", got, "Practice")
	}
}

func TestPracticeScreen_TypingUpdatesState(t *testing.T) {
	var s screen.Screen = testScreen(t)
	s = typeText(s, "¿Cómo")
	if got := s.(*PracticeScreen).State().Input; got != "¿Cómo" {
		t.Fatalf("Input = %q, want %q", got, "¿Cómo")
	}
}

func TestPracticeScreen_EmptySubmitIsNoop(t *testing.T) {
	var s screen.Screen = testScreen(t)
	s = press(s, tea.KeyEnter)
	st := s.(*PracticeScreen).State()
	if st.Result != nil || len(st.Attempts) != 0 {
		t.Fatal("blank submit should not score")
	}
}

func TestPracticeScreen_SubmitScores(t *testing.T) {
	var s screen.Screen = testScreen(t)
	s = typeText(s, "¿Cómo hoy?")
	s = press(s, tea.KeyEnter)

	st := s.(*PracticeScreen).State()
	if st.Result == nil {
		t.Fatal("expected a result after submit")
	}
	if st.Result.Score != 60 {
		t.Errorf("Score = %d, want 60", st.Result.Score)
	}
	if len(st.Attempts) != 1 {
		t.Errorf("Attempts = %d, want 1", len(st.Attempts))
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "60/100") {
		t.Errorf("view should show the score, got:\n%s", view)
	}
	if !strings.Contains(view, `Missing vocabulary: "estás" (are)`) {
		t.Errorf("view should list the hint, got:\n%s", view)
	}
}

func TestPracticeScreen_TabCyclesUnlockedPanels(t *testing.T) {
	var s screen.Screen = testScreen(t)

	s = press(s, tea.KeyTab)
	if got := s.(*PracticeScreen).State().Tab; got != state.TabStructure {
		t.Fatalf("Tab = %v, want Structure", got)
	}
	s = press(s, tea.KeyTab)
	if got := s.(*PracticeScreen).State().Tab; got != state.TabVocabulary {
		t.Fatalf("locked panels should be skipped, got %v", got)
	}

	s = typeText(s, "¿Cómo estás hoy?")
	s = press(s, tea.KeyEnter)
	for range 3 {
		s = press(s, tea.KeyTab)
	}
	if got := s.(*PracticeScreen).State().Tab; got != state.TabAnswer {
		t.Fatalf("Tab = %v, want Answer after a perfect score", got)
	}
	if !strings.Contains(s.View(100, 40), "¿Cómo estás hoy?") {
		t.Error("answer panel should show the reference translation")
	}
}

func TestPracticeScreen_ViewLocksPanels(t *testing.T) {
	view := testScreen(t).View(100, 40)
	if !strings.Contains(view, "How are you today?") {
		t.Error("view should show the English prompt")
	}
	if !strings.Contains(view, "🔒 Answer") {
		t.Error("answer panel should be locked before scoring")
	}
	if !strings.Contains(view, "cómo") {
		t.Error("vocabulary panel should list the lesson vocabulary")
	}
}
