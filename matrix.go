// SPDX-License-Identifier: MIT
// Package dense: the core container.
// Matrix is a concrete, row-major, generically typed 2D grid storing its
// elements in a single flat slice for cache friendliness and so that bounds
// checking reduces to two comparisons per axis.

package dense

import (
	"fmt"
	"strings"
)

// indexErrorf wraps an underlying error with Matrix method context: the
// attempted coordinate and the shape it was checked against.
func indexErrorf(method string, row, col, rows, cols int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): shape %dx%d: %w", method, row, col, rows, cols, err)
}

// Matrix is a fixed-shape rows×cols grid of T values.
// rows and cols are set at construction and never change; data holds
// rows*cols elements in row-major order and is never shared between
// instances — Clone and every operation result allocate fresh storage.
type Matrix[T any] struct {
	rows, cols int // extents, immutable after construction
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Matrix with every cell set to T's zero value.
// Stage 1 (Validate): reject negative extents.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Matrix or ErrBadShape.
// Zero extents are permitted and produce an empty matrix.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) (*Matrix[T], error) {
	// Negative extents cannot be allocated; zero is a valid empty shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// Allocate flat storage; make zero-initializes every cell.
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFromRows creates a Matrix from a rectangular slice of rows, copying the
// input (the result never aliases it).
// Stage 1 (Validate): every row must have the same length.
// Stage 2 (Execute): copy row by row into fresh flat storage.
// Returns ErrBadShape on ragged input.
// Complexity: O(rows*cols) time and memory.
func NewFromRows[T any](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return &Matrix[T]{}, nil // empty shape, no storage needed
	}
	c := len(rows[0])

	m := &Matrix[T]{rows: r, cols: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return the linear offset.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return 0, indexErrorf(method, row, col, m.rows, m.cols, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return 0, indexErrorf(method, row, col, m.rows, m.cols, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Returns T's zero value plus a wrapped ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat slice.
// On error the matrix is untouched: no cell changes, shape stays fixed.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill overwrites every cell with v. No error conditions; an empty matrix is
// a no-op. Deterministic flat 0..n-1 order.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy of the matrix. The copy is fully independent:
// mutating one never affects the other.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, cells comma-separated. For the contract-defined console rendering
// use Print/Fprint instead.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
