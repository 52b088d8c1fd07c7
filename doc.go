// Package dense provides a generic, fixed-shape, row-major 2D container.
//
// The dense package provides:
//
//   - Matrix[T]: a rows×cols grid backed by one contiguous slice, with
//     bounds-checked At/Set, whole-grid Fill, and deep Clone.
//   - Element-wise arithmetic (Add, Sub and their in-place variants) over any
//     numeric element type, with strict fail-fast shape validation.
//   - Conditional printing: Print emits all cells in row-major order when the
//     element type supports textual output, and otherwise emits a single
//     diagnostic line carrying the caller's file and line.
//
// Each Matrix exclusively owns its storage: operation results are always
// fresh allocations, and no two instances ever alias. The package performs no
// internal synchronization; concurrent mutation of a single instance needs
// external mutual exclusion by the caller.
//
// See the examples in this package for usage patterns.
package dense
