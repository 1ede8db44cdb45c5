package editor

import (
	"strings"

	"calc/internal/domain"
	"calc/internal/expr"
)

// entryKeys are the single-rune keys that extend the expression.
const entryKeys = "0123456789.+-*/()"

// Editor holds the pending expression and its derived display state.
type Editor struct {
	expression string
	display    string
	history    string
}

// New returns an editor showing "0" with no history.
func New() *Editor { return &Editor{display: "0"} }

// Reset is equivalent to pressing "C".
func (e *Editor) Reset() {
	e.expression = ""
	e.history = ""
	e.display = "0"
}

// Press applies one key and returns the display to render. Evaluation
// failures are not errors; they show as the "Error" display text.
func (e *Editor) Press(key string) (domain.Display, error) {
	switch key {
	case "C":
		e.Reset()
	case "DEL":
		if e.expression != "" {
			e.expression = e.expression[:len(e.expression)-1]
			e.display = e.expression
		}
		if e.expression == "" {
			e.display = "0"
		}
	case "=":
		if e.expression != "" {
			e.evaluate()
		}
	default:
		if len(key) != 1 || !strings.Contains(entryKeys, key) {
			return e.state(), domain.ErrInvalidKey
		}
		// A display reading "0" or "Error" is placeholder text, not input:
		// the first real key replaces it.
		if e.display == "0" || e.display == "Error" {
			e.expression = key
		} else {
			e.expression += key
		}
		e.display = e.expression
	}
	return e.state(), nil
}

// evaluate computes the pending expression. The history annotation records
// the attempt whether or not it succeeds.
func (e *Editor) evaluate() {
	e.history = e.expression + " ="
	v, err := expr.Evaluate(e.expression)
	if err != nil {
		e.display = "Error"
		e.expression = ""
		return
	}
	// The result becomes the new expression so input chains from it.
	e.display = expr.Format(v)
	e.expression = e.display
}

func (e *Editor) state() domain.Display {
	return domain.Display{Text: e.display, History: e.history}
}
