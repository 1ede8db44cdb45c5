// Package store provides file-based persistence for completed calculations.
//
// It contains the concrete implementation of the domain storage interface,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the user's configured home
// directory.
package store
