// SPDX-License-Identifier: MIT

// Package layout provides dense 2-D storage layouts behind one indexing
// contract.
//
// The layout package provides:
//
//   - RowMajor: one flat buffer, offset = i*stride + j, stride = columns.
//   - ColMajor: one flat buffer, offset = j*stride + i, stride = rows.
//   - Block: four row-major quadrants of an N×N input; Get picks the quadrant
//     (i/h)*2 + (j/h) with h = N/2 and delegates (i%h, j%h).
//
// Every layout is built once from a [][]T, copies its input, and is never
// mutated afterwards, so instances can be shared between goroutines for
// reading. Get returns the element by value or an *IndexError that wraps
// exactly one of ErrForbiddenIndex (the coordinate fails the declared-shape
// check) or ErrOutOfBoundIndex (the offset has no backing storage).
//
// The shape check is strict-greater: Get(i, Stride()) on a row-major matrix
// is not forbidden; it reads the first element of row i+1, or fails with
// ErrOutOfBoundIndex on the last row.
//
// Constructors never fail. Use ValidateRectangular and ValidateBlockInput to
// reject ragged, empty or odd-sided input up front.
package layout
