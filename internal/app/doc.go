// Package app wires application dependencies for the CLI.
//
// It loads Config from the user's config directory, then builds the
// concrete store, engine and service from it, exposing them via the Wire
// struct for commands to use.
package app
