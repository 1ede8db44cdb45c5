package accumulator

import (
	"strconv"
	"strings"

	"calc/internal/domain"
	"calc/internal/expr"
)

const operandKeys = "0123456789."

// Accumulator folds operands into a running value as operators arrive.
type Accumulator struct {
	acc     float64
	pending string   // installed operator awaiting its right operand
	operand string   // operand being typed
	trail   []string // committed operands and operators, for the history line
	display string
	history string

	// evaluated flags that the last key was a successful "=": the next
	// operator chains from the result, the next operand starts fresh.
	evaluated bool
}

// New returns an accumulator showing "0" with no history.
func New() *Accumulator { return &Accumulator{display: "0"} }

// Reset is equivalent to pressing "C".
func (a *Accumulator) Reset() {
	a.acc = 0
	a.pending = ""
	a.operand = ""
	a.trail = nil
	a.display = "0"
	a.history = ""
	a.evaluated = false
}

// Press applies one key and returns the display to render. Parentheses and
// DEL are not part of this engine's token set.
func (a *Accumulator) Press(key string) (domain.Display, error) {
	switch {
	case key == "C":
		a.Reset()
	case key == "=":
		a.equals()
	case key == "+" || key == "-" || key == "*" || key == "/":
		a.operator(key)
	case len(key) == 1 && strings.Contains(operandKeys, key):
		a.entry(key)
	default:
		return a.state(), domain.ErrInvalidKey
	}
	return a.state(), nil
}

func (a *Accumulator) entry(key string) {
	if a.evaluated {
		// A digit after "=" starts a new calculation from scratch.
		a.acc = 0
		a.pending = ""
		a.trail = nil
		a.evaluated = false
	}
	if a.display == "0" || a.display == "Error" {
		a.operand = key
	} else {
		a.operand += key
	}
	a.display = a.operand
}

func (a *Accumulator) operator(op string) {
	a.evaluated = false
	if a.operand != "" {
		v, ok := a.parseOperand()
		if !ok {
			return
		}
		if a.pending != "" {
			r, err := fold(a.acc, a.pending, v)
			if err != nil {
				a.fail(a.attempt())
				return
			}
			a.acc = r
		} else {
			a.acc = v
		}
		a.trail = append(a.trail, a.operand, op)
		a.operand = ""
	} else {
		if len(a.trail) == 0 {
			a.trail = append(a.trail, expr.Format(a.acc))
		}
		if a.pending != "" {
			// Repeated operator with nothing typed: replace, don't fold.
			a.trail[len(a.trail)-1] = op
		} else {
			a.trail = append(a.trail, op)
		}
	}
	a.pending = op
	a.display = expr.Format(a.acc)
}

func (a *Accumulator) equals() {
	if a.pending == "" || a.operand == "" {
		return
	}
	attempt := a.attempt()
	v, ok := a.parseOperand()
	if !ok {
		return
	}
	r, err := fold(a.acc, a.pending, v)
	if err != nil {
		a.fail(attempt)
		return
	}
	a.acc = r
	a.pending = ""
	a.operand = ""
	a.trail = nil
	a.history = attempt + " ="
	a.display = expr.Format(a.acc)
	a.evaluated = true
}

// parseOperand converts the typed operand, failing the whole calculation on
// shapes like "1.2.3".
func (a *Accumulator) parseOperand() (float64, bool) {
	v, err := strconv.ParseFloat(a.operand, 64)
	if err != nil {
		a.fail(a.attempt())
		return 0, false
	}
	return v, true
}

// attempt renders the calculation entered so far, for the history line.
func (a *Accumulator) attempt() string {
	parts := a.trail
	if a.operand != "" {
		parts = append(append([]string(nil), a.trail...), a.operand)
	}
	return strings.Join(parts, " ")
}

func (a *Accumulator) fail(attempt string) {
	a.Reset()
	a.display = "Error"
	if attempt != "" {
		a.history = attempt + " ="
	}
}

func (a *Accumulator) state() domain.Display {
	return domain.Display{Text: a.display, History: a.history}
}

func fold(acc float64, op string, v float64) (float64, error) {
	switch op {
	case "+":
		return acc + v, nil
	case "-":
		return acc - v, nil
	case "*":
		return acc * v, nil
	case "/":
		if v == 0 {
			return 0, expr.ErrDivisionByZero
		}
		return acc / v, nil
	}
	return 0, domain.ErrInvalidKey
}
