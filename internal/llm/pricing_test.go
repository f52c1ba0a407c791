package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model     string
		wantFound bool
		wantIn    float64
	}{
		{"gpt-4o-mini", true, 0.15},
		{"gemini-2.0-flash", true, 0.1},
		{"google/gemini-2.0-flash-exp", true, 0.1},
		{"google/gemini-2.0-flash-exp:free", true, 0.1},
		{"openai/gpt-4o-mini", true, 0.15},
		{"anthropic/claude-haiku-4-5", true, 1},
		{"mistralai/mistral-7b", false, 0},
		{"", false, 0},
	}
	for _, tc := range tests {
		c := LookupCost(tc.model)
		if (c != nil) != tc.wantFound {
			t.Errorf("LookupCost(%q) found = %v, want %v", tc.model, c != nil, tc.wantFound)
			continue
		}
		if c != nil && c.InputPerMTok != tc.wantIn {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tc.model, c.InputPerMTok, tc.wantIn)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.6}
	got := c.Cost(1_000_000, 500_000)
	if math.Abs(got-0.45) > 1e-9 {
		t.Fatalf("Cost = %v, want 0.45", got)
	}
}
