package domain

import "errors"

// ErrInvalidKey is returned by engines for a keypress outside their token set.
var ErrInvalidKey = errors.New("key is not part of the engine's token set")

// Engine consumes one keypress at a time and yields the next display state.
//
// Engines are NOT safe for concurrent use. Callers must serialise access
// per engine; all rendering happens after Press returns.
type Engine interface {
	// Press applies a single key ("0"-"9", ".", "+", "-", "*", "/", "(",
	// ")", "=", "C", "DEL", engine permitting) and returns the display to
	// render. Evaluation failures are not errors: they surface as the
	// "Error" display text. Press errs only on keys outside the token set.
	Press(key string) (Display, error)

	// Reset returns the engine to its initial state, as if "C" were pressed.
	Reset()
}

// HistoryStore persists completed calculations.
type HistoryStore interface {
	AppendHistory(e HistoryEntry) error
	ListHistory(limit int) ([]HistoryEntry, error)
	ClearHistory() error
}
