// SPDX-License-Identifier: MIT
// Package dense: conditional console printing.
//
// Printability is a capability of the element type, resolved from T alone —
// never from matrix contents. Print/Fprint either emit every cell in
// row-major order, or emit exactly one diagnostic line identifying the call
// site, and report which branch ran through their boolean result. This is
// deliberately NOT an error channel: a non-printable T is a capability gap,
// not a failure the caller recovers from.

package dense

import (
	"fmt"
	"io"
	"os"
	"reflect"
)

// printIgnoredFormat is the single diagnostic line emitted for a
// non-printable element type. %s is the caller's "<file>:L<line>", %v the
// concrete element type.
const printIgnoredFormat = "PRINT IGNORED (%s): provided element type %v does not support formatting to a standard output stream.\n"

// stringerType caches the fmt.Stringer interface type for the probe.
var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// Printable reports whether T supports textual output under this package's
// capability rule: T implements fmt.Stringer (on the value or its pointer),
// or T's kind is a basic printable kind (bool, any integer kind, uintptr,
// floats, complexes, string). Funcs, chans, maps, slices and Stringer-less
// structs are not printable. The answer depends only on T, so it is constant
// across all matrices of a given instantiation.
// Complexity: O(1) per call (a handful of reflect lookups).
func Printable[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	// A Stringer always knows how to render itself.
	if t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType) {
		return true
	}
	// Otherwise only the basic kinds have a defined textual form here.
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// fprint is the shared emission kernel. loc is the public caller's position,
// pre-captured by Print/Fprint so the diagnostic names user code, not this
// package. Write errors on w are deliberately ignored: the boolean reports
// the capability branch, nothing else.
func (m *Matrix[T]) fprint(w io.Writer, loc string) bool {
	// Capability check first — one diagnostic line, no element output.
	if !Printable[T]() {
		fmt.Fprintf(w, printIgnoredFormat, loc, reflect.TypeOf((*T)(nil)).Elem())
		return false
	}

	// Row-major emission: every element followed by one space, newline after
	// the last element of each row. A zero-column row emits nothing.
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(w, "%v ", m.data[i*m.cols+j])
			if j == m.cols-1 {
				fmt.Fprintln(w)
			}
		}
	}

	return true
}

// Print emits the matrix to standard output in row-major order and returns
// true, or — when T is not printable — emits a single diagnostic line naming
// this call's file and line and returns false.
// Complexity: O(rows*cols) on the success path, O(1) otherwise.
func (m *Matrix[T]) Print() bool {
	return m.fprint(os.Stdout, callerLocation(1))
}

// Fprint behaves exactly like Print but writes to w, which makes the success
// path testable without capturing os.Stdout.
func (m *Matrix[T]) Fprint(w io.Writer) bool {
	return m.fprint(w, callerLocation(1))
}
