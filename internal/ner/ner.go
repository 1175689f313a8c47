// Package ner adapts the prose NLP library to the rank.EntityRecognizer
// capability. Model state loads lazily on first use and is shared read-only
// afterwards; a failed load marks the recognizer unavailable for the process
// lifetime instead of crashing callers.
package ner

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jdkato/prose/v2"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/rank"
)

// Recognizer detects person entities in a text window.
type Recognizer struct {
	once    sync.Once
	loadErr error
}

// New returns an uninitialized recognizer; the underlying model loads on
// the first Recognize call.
func New() *Recognizer {
	return &Recognizer{}
}

// Recognize runs entity detection and returns entities in document order.
// Labels follow prose conventions ("PERSON", "GPE").
func (r *Recognizer) Recognize(text string) ([]rank.Entity, error) {
	r.once.Do(func() {
		// Warm the model once so later calls share the loaded state.
		if _, err := prose.NewDocument("warmup"); err != nil {
			r.loadErr = fmt.Errorf("ner model load: %w", err)
			slog.Warn("ner unavailable, name extraction degrades to line heuristic", slog.Any("error", r.loadErr))
		}
	})
	if r.loadErr != nil {
		engine.IncrNERErrors()
		return nil, r.loadErr
	}

	engine.IncrNERCalls()
	doc, err := prose.NewDocument(text)
	if err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("ner: %w", err)
	}

	ents := doc.Entities()
	out := make([]rank.Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, rank.Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
