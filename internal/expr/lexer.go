package expr

import "fmt"

// Lexer splits an expression string into tokens.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer over input.
func NewLexer(input string) *Lexer { return &Lexer{input: input} }

// Next returns the next token. A byte outside the grammar's alphabet is a
// *ParseError carrying its offset.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	c := l.input[l.pos]

	var typ TokenType
	switch c {
	case '+':
		typ = TokenPlus
	case '-':
		typ = TokenMinus
	case '*':
		typ = TokenStar
	case '/':
		typ = TokenSlash
	case '(':
		typ = TokenLParen
	case ')':
		typ = TokenRParen
	default:
		if !isNumByte(c) {
			return Token{}, &ParseError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
		for l.pos < len(l.input) && isNumByte(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TokenNumber, Literal: l.input[start:l.pos], Pos: start}, nil
	}

	l.pos++
	return Token{Type: typ, Literal: l.input[start:l.pos], Pos: start}, nil
}

// isNumByte reports whether c can appear inside a number literal. Shapes
// like "1.2.3" lex as one literal and are rejected by the parser.
func isNumByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}
