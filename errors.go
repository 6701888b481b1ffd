// SPDX-License-Identifier: MIT
// Package: strbuilder
//
// errors.go — sentinel errors and the positional EncodingError type.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed for branching.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Methods attach context with the method name and `%w` wrapping.
//   • Runtime methods do not panic on data; panics are confined to option
//     constructors (WithX...) and to use of a finalized Builder, which is a
//     programmer error rather than a data condition.

package strbuilder

import (
	"errors"
	"fmt"
)

// ErrWriteLimit indicates that an append would push the accumulated size
// past the bound installed with WithLimit. Nothing is written when this is
// returned; the failed append is atomic.
// Usage: if errors.Is(err, ErrWriteLimit) { /* abort or flush elsewhere */ }.
var ErrWriteLimit = errors.New("strbuilder: write limit exceeded")

// ErrInvalidRune indicates that AppendRune was given a value that is not a
// Unicode scalar value (a surrogate code point or a value outside the
// Unicode range). The rune is rejected rather than silently encoded as
// U+FFFD, so the accumulated bytes are never altered.
// Usage: if errors.Is(err, ErrInvalidRune) { /* validate input rune */ }.
var ErrInvalidRune = errors.New("strbuilder: not a Unicode scalar value")

// ErrInvalidEncoding indicates that finalization found the accumulated
// bytes to be ill-formed UTF-8. The concrete error is an *EncodingError
// carrying the offset of the first invalid byte and the raw bytes.
// Usage: if errors.Is(err, ErrInvalidEncoding) { /* inspect EncodingError */ }.
var ErrInvalidEncoding = errors.New("strbuilder: accumulated bytes are not valid UTF-8")

// EncodingError reports where finalization failed. It wraps
// ErrInvalidEncoding, so errors.Is(err, ErrInvalidEncoding) matches, and
// errors.As(err, &encErr) recovers the position and the raw bytes.
type EncodingError struct {
	// Offset is the index of the first byte at which no well-formed
	// UTF-8 sequence starts.
	Offset int

	// Raw holds the accumulated bytes, unaltered. Ownership has moved out
	// of the Builder; the slice is the caller's to inspect.
	Raw []byte
}

// Error renders the position of the first offending byte.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("strbuilder: invalid UTF-8 at byte %d of %d", e.Offset, len(e.Raw))
}

// Unwrap exposes the ErrInvalidEncoding sentinel for errors.Is.
func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }

// wrapf prefixes a sentinel with the originating method name and a short
// formatted message, keeping the sentinel reachable through %w.
// Returns an error of the form "<Method>: <formatted message>: <sentinel>".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the inner message, then wrap the sentinel for errors.Is.
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
