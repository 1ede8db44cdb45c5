// Package accumulator implements the immediate-evaluation calculator engine.
//
// There is no expression buffer: each operator key folds the entered operand
// into a running value before being installed as the pending operator, so
// evaluation is strictly left to right with no precedence and no
// parentheses. "=" folds the final operand and keeps the result as the
// running value for chaining.
//
// Concurrency: an Accumulator is NOT safe for concurrent use. Callers must
// serialise keypresses.
package accumulator
