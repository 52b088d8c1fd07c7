// Package dense_test contains unit tests for the printability probe and the
// conditional Print/Fprint emission.
package dense_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/dense"
	"github.com/stretchr/testify/require"
)

// opaque is an element type outside the printable capability rule: a struct
// with no Stringer. Its contents are irrelevant — the probe looks at the
// type only.
type opaque struct {
	fn func()
}

// glyph is a Stringer element type, printable despite not being a basic kind.
type glyph int

func (g glyph) String() string { return fmt.Sprintf("<%d>", int(g)) }

// TestPrintableProbe pins the capability rule for representative types.
func TestPrintableProbe(t *testing.T) {
	require.True(t, dense.Printable[int]())        // basic kind
	require.True(t, dense.Printable[float64]())    // basic kind
	require.True(t, dense.Printable[complex128]()) // basic kind
	require.True(t, dense.Printable[string]())     // basic kind
	require.True(t, dense.Printable[glyph]())      // Stringer

	require.False(t, dense.Printable[opaque]())   // Stringer-less struct
	require.False(t, dense.Printable[func()]())   // func kind
	require.False(t, dense.Printable[chan int]()) // chan kind
	require.False(t, dense.Printable[[]int]())    // composite kind
}

// TestFprintSuccess checks the exact row-major byte output: each element
// followed by one space, newline after the last element of each row.
func TestFprintSuccess(t *testing.T) {
	m, err := dense.NewFromRows([][]int{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	ok := m.Fprint(&buf)

	require.True(t, ok)                            // printable path taken
	require.Equal(t, "1 2 \n3 4 \n", buf.String()) // exact layout incl. trailing space
}

// TestFprintStringerElements verifies Stringer elements render via String().
func TestFprintStringerElements(t *testing.T) {
	m, err := dense.New[glyph](1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, glyph(7)))
	require.NoError(t, m.Set(0, 1, glyph(8)))

	var buf bytes.Buffer
	require.True(t, m.Fprint(&buf))
	require.Equal(t, "<7> <8> \n", buf.String())
}

// TestFprintEmptyMatrix ensures an empty shape emits nothing and still
// reports the printable branch.
func TestFprintEmptyMatrix(t *testing.T) {
	m, err := dense.New[int](0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.True(t, m.Fprint(&buf)) // capability holds regardless of shape
	require.Zero(t, buf.Len())      // nothing to emit
}

// TestFprintNonPrintable checks the failure branch: exactly one diagnostic
// line (never one per element), carrying this file's name and line, and a
// false result.
func TestFprintNonPrintable(t *testing.T) {
	m, err := dense.New[opaque](3, 3) // nine cells, but one diagnostic at most
	require.NoError(t, err)

	var buf bytes.Buffer
	ok := m.Fprint(&buf)
	require.False(t, ok) // capability check failed

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n")) // exactly one line
	require.True(t, strings.HasPrefix(out, "PRINT IGNORED ("))
	require.Contains(t, out, "print_test.go:L") // call-site file and line marker
	require.Contains(t, out, "does not support formatting to a standard output stream.")
	require.NotContains(t, out, "{") // no element output leaked
}

// TestFprintNonPrintableIndependentOfContents verifies the branch decision
// ignores matrix contents entirely: an empty non-printable matrix still
// emits the diagnostic.
func TestFprintNonPrintableIndependentOfContents(t *testing.T) {
	m, err := dense.New[opaque](0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.False(t, m.Fprint(&buf))                    // capability, not contents
	require.Contains(t, buf.String(), "PRINT IGNORED ") // diagnostic still emitted
}
