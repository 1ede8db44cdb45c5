package calculator

import (
	"fmt"
	"strings"
	"time"

	"calc/internal/domain"
)

// Service routes keypresses to an engine and records completed evaluations
// in the history store.
type Service struct {
	engine domain.Engine
	hist   domain.HistoryStore

	// last is the display after the previous keypress; comparing against it
	// tells an evaluating "=" apart from a no-op one.
	last domain.Display
}

// New returns a service driving engine and recording into hist.
func New(engine domain.Engine, hist domain.HistoryStore) *Service {
	return &Service{engine: engine, hist: hist, last: domain.Display{Text: "0"}}
}

// Press forwards one key to the engine. A successful "=" is appended to the
// history store; a store failure is returned but leaves the engine state
// intact, so the display is still usable.
func (s *Service) Press(key string) (domain.Display, error) {
	prev := s.last
	d, err := s.engine.Press(key)
	if err != nil {
		return d, err
	}
	s.last = d

	if key == "=" && d != prev && d.Text != "Error" && d.History != "" {
		e := domain.HistoryEntry{
			Expression: strings.TrimSuffix(d.History, " ="),
			Result:     d.Text,
			At:         time.Now(),
		}
		if err := s.hist.AppendHistory(e); err != nil {
			return d, fmt.Errorf("record history: %w", err)
		}
	}
	return d, nil
}

// Evaluate clears the engine, replays text key-by-key and presses "=".
// Whitespace between tokens is ignored so "2 + 3" works from a shell.
func (s *Service) Evaluate(text string) (domain.Display, error) {
	s.Reset()
	for _, r := range text {
		if r == ' ' || r == '\t' {
			continue
		}
		if _, err := s.Press(string(r)); err != nil {
			return domain.Display{}, fmt.Errorf("key %q: %w", string(r), err)
		}
	}
	return s.Press("=")
}

// Reset clears the engine, as if "C" were pressed.
func (s *Service) Reset() {
	s.engine.Reset()
	s.last = domain.Display{Text: "0"}
}

// History returns up to limit recorded calculations, newest last.
func (s *Service) History(limit int) ([]domain.HistoryEntry, error) {
	return s.hist.ListHistory(limit)
}

// ClearHistory wipes the recorded calculations.
func (s *Service) ClearHistory() error { return s.hist.ClearHistory() }
