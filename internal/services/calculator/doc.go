// Package calculator drives a calculator engine and records its results.
//
// The service owns no arithmetic itself: it forwards keypresses to the
// configured engine (deferred or immediate policy) and appends each
// completed evaluation to the history store.
package calculator
