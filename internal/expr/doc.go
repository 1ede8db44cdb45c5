// Package expr evaluates elementary arithmetic expressions.
//
// The grammar is fixed and small on purpose: numbers with an optional
// decimal point, the four binary operators, unary sign, and parentheses.
// Input is parsed by recursive descent and computed directly; nothing is
// ever handed to a general-purpose evaluator.
//
//	expr    = term { ("+"|"-") term }
//	term    = unary { ("*"|"/") unary }
//	unary   = { "+"|"-" } primary
//	primary = number | "(" expr ")"
//
// All failures surface as *ParseError, except division by zero, which is
// reported as ErrDivisionByZero.
package expr
