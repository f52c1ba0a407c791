package lessons

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalog_Order(t *testing.T) {
	got := Catalog()
	want := []string{"basic-greeting", "food-question", "time-question"}
	if len(got) != len(want) {
		t.Fatalf("catalog has %d lessons, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("catalog[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCatalog_LessonsAreValid(t *testing.T) {
	for _, l := range Catalog() {
		if err := l.Validate(); err != nil {
			t.Errorf("lesson %s: %v", l.ID, err)
		}
		if !strings.HasPrefix(l.CorrectAnswer, "¿") || !strings.HasSuffix(l.CorrectAnswer, "?") {
			t.Errorf("lesson %s: answer %q lacks question marks", l.ID, l.CorrectAnswer)
		}
		answer := strings.ToLower(l.CorrectAnswer)
		for _, v := range l.Vocabulary {
			if !strings.Contains(answer, strings.ToLower(v.Spanish)) {
				t.Errorf("lesson %s: vocabulary %q not in answer", l.ID, v.Spanish)
			}
		}
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	a := Catalog()
	a[0].Vocabulary[0].Spanish = "mutated"
	a[0].Examples[0] = "mutated"

	b, ok := CatalogLesson(a[0].ID)
	if !ok {
		t.Fatal("lesson disappeared")
	}
	if b.Vocabulary[0].Spanish == "mutated" || b.Examples[0] == "mutated" {
		t.Fatal("catalog data was mutated through a returned copy")
	}
}

func TestCatalogLesson_Unknown(t *testing.T) {
	if _, ok := CatalogLesson("nope"); ok {
		t.Fatal("expected unknown id to be absent")
	}
}

func TestLesson_Validate(t *testing.T) {
	valid := func() *Lesson {
		l, _ := CatalogLesson("basic-greeting")
		return l
	}

	tests := []struct {
		name   string
		mutate func(*Lesson)
	}{
		{"missing id", func(l *Lesson) { l.ID = " " }},
		{"missing english", func(l *Lesson) { l.English = "" }},
		{"missing answer", func(l *Lesson) { l.CorrectAnswer = "" }},
		{"empty vocabulary", func(l *Lesson) { l.Vocabulary = nil }},
		{"blank spanish term", func(l *Lesson) { l.Vocabulary[1].Spanish = "  " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := valid()
			tc.mutate(l)
			err := l.Validate()
			if !errors.Is(err, ErrInvalidLesson) {
				t.Fatalf("Validate() = %v, want ErrInvalidLesson", err)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid lesson rejected: %v", err)
	}
}
