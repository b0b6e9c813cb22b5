// SPDX-License-Identifier: MIT

// Package layout: the shared Matrix capability and the closed Kind enum.
// Errors and options live in dedicated files (errors.go, options.go).
package layout

// Kind identifies one of the three storage layouts.
type Kind uint8

const (
	// RowMajorKind stores rows back to back; offset = i*stride + j.
	RowMajorKind Kind = iota
	// ColMajorKind stores columns back to back; offset = j*stride + i.
	ColMajorKind
	// BlockKind stores four row-major quadrants.
	BlockKind
)

// String names the layout for messages and logs.
func (k Kind) String() string {
	switch k {
	case RowMajorKind:
		return "row-major"
	case ColMajorKind:
		return "col-major"
	case BlockKind:
		return "block"
	default:
		return "unknown"
	}
}

// Matrix is the indexing contract shared by every layout.
// Instances are immutable after construction and safe for concurrent reads.
//
// Complexity notes: every method is O(1).
type Matrix[T any] interface {
	// Get returns the element at (i, j) by value, or an *IndexError.
	// It never panics.
	Get(i, j int) (T, error)

	// Stride returns the shape descriptor fixed at construction: the column
	// count for row-major, the row count for column-major, the side N for block.
	Stride() int

	// Len returns the number of elements held in backing storage.
	Len() int

	// Kind reports which layout backs the matrix.
	Kind() Kind
}
