// Package translate turns English text into Spanish through a machine
// translation service.
package translate

import (
	"context"
	"errors"
	"fmt"
)

// Default language pair.
const (
	DefaultFrom = "en"
	DefaultTo   = "es"
)

// Result is a single translation.
type Result struct {
	Text         string
	Match        float64 // 0.0 - 1.0 similarity to translation memory
	From         string
	To           string
	Source       string // label of the service that produced the text
	Alternatives []string
}

// Reliable reports whether the service was confident in the translation.
func (r Result) Reliable() bool {
	return r.Match >= 0.8
}

// Translator translates text between two languages.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (Result, error)
}

// ErrEmptyText is returned when there is nothing to translate.
var ErrEmptyText = errors.New("text is required")

// Error is returned when the translation service answers with a non-success
// status.
type Error struct {
	Status  int
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("translation failed: status %d", e.Status)
	}
	return fmt.Sprintf("translation failed: status %d: %s", e.Status, e.Details)
}
