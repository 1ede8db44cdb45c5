package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDivisionByZero reports a division whose divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// ParseError describes why an input is not a valid arithmetic expression.
type ParseError struct {
	Pos int    // byte offset of the offending token
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

// Evaluate parses input against the package grammar and computes its value.
func Evaluate(input string) (float64, error) {
	p := &parser{lex: NewLexer(input)}
	if err := p.advance(); err != nil {
		return 0, err
	}
	if p.tok.Type == TokenEOF {
		return 0, &ParseError{Pos: p.tok.Pos, Msg: "empty expression"}
	}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.tok.Type != TokenEOF {
		return 0, &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf("unexpected %q", p.tok.Literal)}
	}
	return v, nil
}

// Format renders a result the way displays show it: shortest form that
// round-trips, integral values without a decimal point. Magnitudes that 'g'
// would print with an exponent fall back to plain decimal, keeping every
// result re-enterable through the package grammar.
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}

type parser struct {
	lex *Lexer
	tok Token // one token of lookahead
}

func (p *parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// expr = term { ("+"|"-") term }
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok.Type == TokenPlus || p.tok.Type == TokenMinus {
		op := p.tok.Type
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == TokenPlus {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

// term = unary { ("*"|"/") unary }
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.tok.Type == TokenStar || p.tok.Type == TokenSlash {
		op := p.tok.Type
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == TokenStar {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			v /= rhs
		}
	}
	return v, nil
}

// unary = { "+"|"-" } primary
func (p *parser) unary() (float64, error) {
	neg := false
	for p.tok.Type == TokenPlus || p.tok.Type == TokenMinus {
		if p.tok.Type == TokenMinus {
			neg = !neg
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
	}
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// primary = number | "(" expr ")"
func (p *parser) primary() (float64, error) {
	switch p.tok.Type {
	case TokenNumber:
		v, err := strconv.ParseFloat(p.tok.Literal, 64)
		if err != nil {
			return 0, &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf("invalid number %q", p.tok.Literal)}
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	case TokenLParen:
		if err := p.advance(); err != nil {
			return 0, err
		}
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.tok.Type != TokenRParen {
			return 0, &ParseError{Pos: p.tok.Pos, Msg: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	case TokenEOF:
		return 0, &ParseError{Pos: p.tok.Pos, Msg: "unexpected end of expression"}
	default:
		return 0, &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf("unexpected %q", p.tok.Literal)}
	}
}
