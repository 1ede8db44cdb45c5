// Package editor implements the deferred-evaluation calculator engine.
//
// Keypresses accumulate into a single expression string which is parsed and
// computed as a whole when "=" is pressed, with conventional operator
// precedence and parentheses. A successful result replaces the expression so
// further input chains from it; a failed evaluation collapses to the "Error"
// display and an empty expression.
//
// Concurrency: an Editor is NOT safe for concurrent use. Callers must
// serialise keypresses.
package editor
