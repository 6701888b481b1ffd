// SPDX-License-Identifier: MIT
// Package: strbuilder
//
// options.go — functional options for Builder construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Builder methods themselves never panic on data.
//   • Options resolve into an immutable config at New; no hidden globals.
//   • Capacity is a performance hint only: every capacity value, including
//     zero, yields byte-identical observable results.

package strbuilder

// Option customizes a Builder by mutating its config before the byte
// sequence is allocated.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config is the resolved construction state. It exists only during New;
// the Builder keeps the limit and discards the rest.
type config struct {
	capacity int // initial reservation, bytes
	limit    int // maximum accumulated size; NoLimit = unbounded
}

// WithCapacity sets the initial reservation, in bytes. Zero is legal and
// means no pre-reservation. Panics on negative size to surface programmer
// error early.
// Complexity: O(1) time, O(1) space.
func WithCapacity(size int) Option {
	if size < 0 {
		// Fail fast: option constructors validate and panic.
		panic("strbuilder: WithCapacity(negative)")
	}
	return func(c *config) {
		// A hint only; growth beyond it is unbounded.
		c.capacity = size
	}
}

// WithLimit bounds the accumulated size at maxBytes. Appends that would
// cross the bound fail with ErrWriteLimit and write nothing. Panics on
// negative maxBytes; NoLimit restores the unbounded default.
// Complexity: O(1) time, O(1) space.
func WithLimit(maxBytes int) Option {
	if maxBytes < 0 {
		// Fail fast to keep the append contract two-valued: success or
		// ErrWriteLimit, never a nonsense bound.
		panic("strbuilder: WithLimit(negative)")
	}
	return func(c *config) {
		// Checked on every append before any byte is written.
		c.limit = maxBytes
	}
}
