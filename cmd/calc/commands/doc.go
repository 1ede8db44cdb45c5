// Package commands defines the calc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval     Evaluate one expression and print the result
//   - repl     Interactive calculator prompt
//   - history  Show or clear recorded calculations
//
// # Implementation
//
// The root command loads the yaml config and builds a dependency graph
// (store, engine, service) before any subcommand runs, so handlers share one
// app context. The --policy flag switches between the deferred
// full-expression engine and the immediate running-accumulator engine.
package commands
