// SPDX-License-Identifier: MIT
// Package dense: element-wise arithmetic over any Matrix element type that
// supports + and -. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches; operands are never mutated
// except by the explicitly in-place variants.

package dense

import "golang.org/x/exp/constraints"

// Number constrains Matrix element types usable with the arithmetic family:
// any integer, floating-point or complex type. The container itself accepts
// any T; only Add/Sub and friends require Number.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opEqual      = "Equal"
)

// combine is the shared element-wise kernel behind Add and Sub: it validates
// the operands, allocates a fresh result and applies op cell by cell over the
// flat backing slices in deterministic 0..n-1 order. Unexported; invariants
// are enforced by the public wrappers.
// Complexity: O(rows*cols) time and memory.
func combine[T Number](a, b *Matrix[T], op func(x, y T) T, tag, loc string) (*Matrix[T], error) {
	// Validate presence and shape match; the wrap carries both shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(tag+" ("+loc+")", err)
	}

	// Allocate the result; shape is already known valid.
	res := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}

	// Single flat loop over the row-major buffers.
	for idx := range a.data {
		res.data[idx] = op(a.data[idx], b.data[idx])
	}

	return res, nil
}

// combineInPlace is the in-place counterpart of combine: dst[i] = op(dst[i], src[i]).
// No allocation; dst is untouched when validation fails.
// Complexity: O(rows*cols) time, O(1) space.
func combineInPlace[T Number](dst, src *Matrix[T], op func(x, y T) T, tag, loc string) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return opErrorf(tag+" ("+loc+")", err)
	}

	for idx := range dst.data {
		dst.data[idx] = op(dst.data[idx], src.data[idx])
	}

	return nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Neither operand is mutated. On shape mismatch the error wraps
// ErrDimensionMismatch carrying both shapes and the caller's file:line.
// Complexity: O(rows*cols) time and memory.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return combine(a, b, func(x, y T) T { return x + y }, opAdd, callerLocation(1))
}

// Sub computes the element-wise difference C = A - B and returns a fresh
// Matrix. Identical contract to Add, substituting subtraction.
// Complexity: O(rows*cols) time and memory.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return combine(a, b, func(x, y T) T { return x - y }, opSub, callerLocation(1))
}

// AddInPlace performs dst += src cell by cell, allocating nothing.
// Same dimension-mismatch contract as Add; dst keeps its prior contents when
// the shapes differ.
// Complexity: O(rows*cols) time, O(1) space.
func AddInPlace[T Number](dst, src *Matrix[T]) error {
	return combineInPlace(dst, src, func(x, y T) T { return x + y }, opAddInPlace, callerLocation(1))
}

// SubInPlace performs dst -= src cell by cell, allocating nothing.
// Same contract as AddInPlace, substituting subtraction.
// Complexity: O(rows*cols) time, O(1) space.
func SubInPlace[T Number](dst, src *Matrix[T]) error {
	return combineInPlace(dst, src, func(x, y T) T { return x - y }, opSubInPlace, callerLocation(1))
}

// Equal reports whether a and b hold identical cells. Shapes must match:
// comparing differently shaped matrices is a contract violation, not a
// "false", so it returns a wrapped ErrDimensionMismatch like the arithmetic
// family. Early-exits on the first differing cell.
// Complexity: O(rows*cols) time, O(1) space.
func Equal[T Number](a, b *Matrix[T]) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, opErrorf(opEqual+" ("+callerLocation(1)+")", err)
	}

	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false, nil // early-exit on first difference
		}
	}

	return true, nil
}
