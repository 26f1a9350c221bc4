// Package binio wraps package frozen's bit-exact native container around
// an io.Writer/io.Reader, and around a file path for callers that just
// want to load or save a snapshot directly.
//
// The interesting logic — the header/state-table/arc-table layout, field
// validation, zero-copy exposure — lives in package frozen; this package
// is deliberately thin, treating file I/O as a trivial wrapper concern.
package binio
