// Package strbuilder provides a minimal, growable byte accumulator that
// collects heterogeneous appendable values and finalizes into a validated
// UTF-8 string.
//
// The Builder owns a contiguous byte sequence and exposes a small, closed
// API surface:
//
//   - Typed appends: AppendString, AppendBytes, AppendByte, AppendRune
//   - Observation: Len (byte count), Cap, Bytes (read-only view)
//   - Composition: Write (io.Writer adapter over AppendBytes)
//   - Finalization: String — validates UTF-8 and consumes the Builder
//
// Why strbuilder?
//
//   - Append-only by construction — no removal, no truncation; byte order
//     is append order, so the finalized text is exactly the concatenation
//     of every appended value's byte representation.
//   - Deterministic conversions — strings and byte slices are written
//     verbatim, a byte becomes a one-byte sequence, a rune becomes its
//     standard 1–4 byte UTF-8 encoding. No value is dropped or replaced.
//   - Single validation point — ill-formed UTF-8 is reported once, at
//     finalization, with the offset of the first offending byte and the
//     raw bytes preserved for inspection (EncodingError).
//   - Atomic appends — a failed append writes nothing; Len never reflects
//     a partial write.
//
// Configuration Options (Option):
//
//	– WithCapacity(size int)
//	    Initial reservation hint (default DefaultCapacity). Affects
//	    performance only, never observable results. Panics if size < 0.
//
//	– WithLimit(maxBytes int)
//	    Installs an upper bound on accumulated size. Appends that would
//	    cross it fail with ErrWriteLimit and write nothing. Panics if
//	    maxBytes < 0; NoLimit (the default) disables the bound.
//
// Core Methods:
//
//	AppendString(s string) error      // O(len(s)) amortized
//	AppendBytes(p []byte) error       // O(len(p)) amortized
//	AppendByte(c byte) error          // O(1) amortized
//	AppendRune(r rune) error          // O(1) amortized, writes 1–4 bytes
//	Write(p []byte) (int, error)      // io.Writer over AppendBytes
//	Len() int                         // O(1)
//	Cap() int                         // O(1)
//	Bytes() []byte                    // O(1), read-only view
//	String() (string, error)          // O(n) validation; consumes Builder
//
// Errors:
//
//	ErrWriteLimit      – append would exceed the WithLimit bound
//	ErrInvalidRune     – rune is a surrogate or out of Unicode range
//	ErrInvalidEncoding – finalized bytes are not well-formed UTF-8
//
// Callers branch on semantics with errors.Is; error strings are not part
// of the contract. String marks the Builder as spent: any later call on a
// finalized Builder is a programmer error and panics.
//
// The Builder has a single owner at a time. Appends and finalization need
// exclusive access; Len, Cap and Bytes are read-only and may run
// concurrently with each other, but never with a mutation. There is no
// internal locking.
package strbuilder
