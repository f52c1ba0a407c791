package validate

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `validate:"required,max=5"`
	Score int    `validate:"min=0,max=100"`
}

func TestStruct(t *testing.T) {
	if err := Struct(sample{Name: "ana", Score: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Struct(sample{Name: "", Score: 101})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"sample.Name: failed required", "sample.Score: failed max=100"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestStruct_CountsCharacters(t *testing.T) {
	// Five accented characters are ten bytes but within max=5.
	if err := Struct(sample{Name: "ááááá"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
