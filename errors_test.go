// SPDX-License-Identifier: MIT
// Package strbuilder_test locks in the sentinel-error contract: callers
// branch with errors.Is, and EncodingError exposes position and raw bytes.

package strbuilder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strbuilder"
)

// TestSentinels_Distinct verifies the sentinels never alias each other, so
// errors.Is branches stay unambiguous.
func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{
		strbuilder.ErrWriteLimit,
		strbuilder.ErrInvalidRune,
		strbuilder.ErrInvalidEncoding,
	}

	for i, a := range sentinels {
		for j, c := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, c), "%v must not match %v", a, c)
		}
	}
}

// TestEncodingError_Contract verifies Error rendering and the Unwrap chain
// down to ErrInvalidEncoding.
func TestEncodingError_Contract(t *testing.T) {
	encErr := &strbuilder.EncodingError{Offset: 5, Raw: []byte("abcde\x80f")}

	assert.ErrorIs(t, encErr, strbuilder.ErrInvalidEncoding, "Unwrap must expose the sentinel")
	assert.Contains(t, encErr.Error(), "byte 5", "message must locate the first invalid byte")
	assert.Contains(t, encErr.Error(), "of 7", "message must report the total size")
}
