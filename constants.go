// SPDX-License-Identifier: MIT
// Package: strbuilder
//
// constants.go — shared constants used across the package, ensuring
// consistent defaults and error context prefixes.

package strbuilder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the originating method for context.
//-----------------------------------------------------------------------------

const (
	// MethodAppendString is the canonical name for the AppendString method.
	MethodAppendString = "AppendString"
	// MethodAppendBytes is the canonical name for the AppendBytes method.
	MethodAppendBytes = "AppendBytes"
	// MethodAppendByte is the canonical name for the AppendByte method.
	MethodAppendByte = "AppendByte"
	// MethodAppendRune is the canonical name for the AppendRune method.
	MethodAppendRune = "AppendRune"
	// MethodString is the canonical name for the finalizing String method.
	MethodString = "String"
)

//-----------------------------------------------------------------------------
// Capacity Defaults
//-----------------------------------------------------------------------------

// DefaultCapacity is the number of bytes reserved by New when no
// WithCapacity option is given. A reservation is a performance hint only;
// it never bounds growth and never affects observable results.
const DefaultCapacity = 1024

// NoLimit disables the accumulated-size bound. It is the default limit,
// under which appends cannot fail.
const NoLimit = 0
