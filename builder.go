// SPDX-License-Identifier: MIT
// Package: strbuilder
//
// builder.go — the Builder type: construction, the typed append set,
// observation, and the consuming String finalizer.
//
// Design contract (strict):
//   - Append-only: the byte sequence never shrinks; Len is monotonic.
//   - Atomic appends: limit checks run before any byte is written, so a
//     failed append leaves the sequence untouched.
//   - Conversions are verbatim: no byte is dropped, replaced, or reordered.
//   - String consumes the Builder; every later call on it panics.

package strbuilder

import (
	"unicode/utf8"
)

// Builder accumulates bytes from typed appends and finalizes them into a
// validated UTF-8 string. Construct with New; the zero value works but
// carries no reservation and no limit. A Builder has a single owner:
// appends and String require exclusive access, Len/Cap/Bytes are
// read-only.
type Builder struct {
	buf   []byte // accumulated bytes, append order
	limit int    // maximum accumulated size; NoLimit = unbounded
	spent bool   // set by String; guards use-after-finalize
}

// New creates an empty Builder with DefaultCapacity reserved, adjusted by
// the given options. Construction never fails; invalid option inputs panic
// inside the option constructors themselves.
// Complexity: O(capacity) for the reservation, O(len(opts)) to resolve.
func New(opts ...Option) *Builder {
	cfg := config{capacity: DefaultCapacity, limit: NoLimit}
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		buf:   make([]byte, 0, cfg.capacity),
		limit: cfg.limit,
	}
}

// AppendString writes the UTF-8 bytes of s, verbatim, to the end of the
// sequence. Go strings are immutable views, so both owned text and text
// views are served by this one method.
// Returns ErrWriteLimit (wrapped) if the bytes would cross the limit;
// nothing is written on failure.
func (b *Builder) AppendString(s string) error {
	b.mustOpen(MethodAppendString)
	if err := b.fits(MethodAppendString, len(s)); err != nil {
		return err
	}
	b.buf = append(b.buf, s...)

	return nil
}

// AppendBytes writes p, verbatim and in order, to the end of the sequence.
// The bytes are copied; the Builder never aliases p.
// Returns ErrWriteLimit (wrapped) if p would cross the limit; nothing is
// written on failure.
func (b *Builder) AppendBytes(p []byte) error {
	b.mustOpen(MethodAppendBytes)
	if err := b.fits(MethodAppendBytes, len(p)); err != nil {
		return err
	}
	b.buf = append(b.buf, p...)

	return nil
}

// AppendByte writes the single byte c (any value 0–255) to the end of the
// sequence. A raw byte is not validated as UTF-8 here; validation happens
// once, in String.
// Returns ErrWriteLimit (wrapped) if one more byte would cross the limit.
func (b *Builder) AppendByte(c byte) error {
	b.mustOpen(MethodAppendByte)
	if err := b.fits(MethodAppendByte, 1); err != nil {
		return err
	}
	b.buf = append(b.buf, c)

	return nil
}

// AppendRune writes the standard UTF-8 encoding of r (1 to 4 bytes) to the
// end of the sequence. Surrogate code points and values beyond the Unicode
// range are rejected with ErrInvalidRune rather than silently encoded as
// U+FFFD, so an accepted append never alters the rune's bytes.
// Returns ErrWriteLimit (wrapped) if the encoding would cross the limit;
// nothing is written on any failure.
func (b *Builder) AppendRune(r rune) error {
	b.mustOpen(MethodAppendRune)
	if !utf8.ValidRune(r) {
		return wrapf(MethodAppendRune, ErrInvalidRune, "%#U", r)
	}

	// Encode into a stack buffer first so the limit check covers the
	// exact width and a rejected append writes nothing.
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	if err := b.fits(MethodAppendRune, n); err != nil {
		return err
	}
	b.buf = append(b.buf, enc[:n]...)

	return nil
}

// Write implements io.Writer over AppendBytes, enabling composition with
// fmt.Fprintf and friends. On success n == len(p); on failure n == 0 and
// nothing was written (the append is atomic).
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.AppendBytes(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Len returns the number of bytes accumulated so far — a byte count, not a
// rune count. It equals the sum of the byte-lengths of every successful
// append, in order, and is monotonically non-decreasing.
// Complexity: O(1).
func (b *Builder) Len() int {
	b.mustOpen("Len")

	return len(b.buf)
}

// Cap returns the currently reserved capacity in bytes. Purely an
// observation of the growth hint; never part of observable results.
// Complexity: O(1).
func (b *Builder) Cap() int {
	b.mustOpen("Cap")

	return cap(b.buf)
}

// Bytes returns the accumulated bytes. The slice is a view into the
// Builder's storage: callers must not modify it, and a later append may
// reallocate out from under it. For a stable copy, append it elsewhere.
// Complexity: O(1).
func (b *Builder) Bytes() []byte {
	b.mustOpen("Bytes")

	return b.buf
}

// String validates the accumulated bytes as UTF-8 and returns them as a
// string, consuming the Builder: ownership of the bytes moves into the
// result, and every later call on the Builder panics.
//
// On ill-formed input it returns an *EncodingError wrapping
// ErrInvalidEncoding, carrying the offset of the first invalid byte and
// the raw bytes for inspection. No byte is ever dropped or replaced.
// An empty Builder finalizes to "" without error.
// Complexity: O(Len()) for validation.
func (b *Builder) String() (string, error) {
	b.mustOpen(MethodString)

	// Consume: take the bytes, mark the Builder spent.
	raw := b.buf
	b.buf = nil
	b.spent = true

	if !utf8.Valid(raw) {
		return "", &EncodingError{Offset: firstInvalid(raw), Raw: raw}
	}

	return string(raw), nil
}

// mustOpen panics if the Builder was already consumed by String.
// Use-after-finalize is a programmer error, not a data condition, so it
// fails fast instead of returning an error.
func (b *Builder) mustOpen(method string) {
	if b.spent {
		panic("strbuilder: " + method + " called on a finalized Builder")
	}
}

// fits reports whether n more bytes stay within the limit, wrapping
// ErrWriteLimit with method context when they would not. Always checked
// before writing, keeping every append atomic.
func (b *Builder) fits(method string, n int) error {
	if b.limit != NoLimit && len(b.buf)+n > b.limit {
		return wrapf(method, ErrWriteLimit, "%d byte(s) over limit %d", len(b.buf)+n-b.limit, b.limit)
	}

	return nil
}

// firstInvalid returns the index of the first byte at which no well-formed
// UTF-8 sequence starts. Called only on input utf8.Valid already rejected,
// so a hit is guaranteed.
func firstInvalid(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	// Unreachable for invalid input; keep the compiler satisfied.
	return -1
}
