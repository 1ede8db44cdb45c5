package domain

import "time"

// Display is what a rendering layer shows after each keypress.
type Display struct {
	// Text is the main readout: the pending expression, "0" when it is
	// empty, or "Error" after a failed evaluation.
	Text string

	// History is the most recently completed expression suffixed with " =",
	// or "" when nothing has been evaluated since the last clear.
	History string
}

// Policy selects how an engine turns keypresses into results.
type Policy string

const (
	// PolicyDeferred accumulates a full expression and parses it on "=".
	PolicyDeferred Policy = "deferred"

	// PolicyImmediate folds each operator into a running value as soon as
	// the next operator (or "=") is pressed. No precedence, left to right.
	PolicyImmediate Policy = "immediate"
)

// Valid reports whether p names a known policy.
func (p Policy) Valid() bool {
	return p == PolicyDeferred || p == PolicyImmediate
}

// HistoryEntry records one completed evaluation.
type HistoryEntry struct {
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	At         time.Time `json:"at"`
}
