// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package dense

import (
	"errors"
	"fmt"
	"runtime"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never returned bare: each call
// site wraps them once with fmt.Errorf("ctx: %w", ErrX), carrying the
// attempted index or both operand shapes — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape cannot be represented:
	// a negative extent at construction, or ragged row input to NewFromRows.
	// Zero extents are valid and produce an empty matrix.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes in the
	// element-wise family (Add/Sub and in-place variants). The wrap at the
	// call site carries both shapes.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("dense: nil matrix")
)

// callerLocation returns the "<file>:L<line>" position of the caller skip
// frames above this function, for embedding into diagnostics. It degrades to
// "unknown:L0" when frame information is unavailable.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown:L0"
	}
	return fmt.Sprintf("%s:L%d", file, line)
}

// opErrorf wraps an underlying error with the given operation tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
