// SPDX-License-Identifier: MIT
// Package layout: sentinel error set and the typed indexing failure.
// Get never panics on user-supplied coordinates; every failure path returns
// an *IndexError whose Unwrap yields one of the two indexing sentinels.
// Tests MUST match failures via errors.Is / errors.As.

package layout

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "layout: ..." so it greps cleanly in logs.
// Validators wrap sentinels with fmt.Errorf("<tag>: %w", ErrX); callers still
// match with errors.Is.

var (
	// ErrForbiddenIndex means the coordinate failed the declared-shape check
	// before any offset was computed.
	ErrForbiddenIndex = errors.New("layout: forbidden index")

	// ErrOutOfBoundIndex means the computed physical offset has no backing
	// storage in the flat buffer.
	ErrOutOfBoundIndex = errors.New("layout: out of bound index")

	// ErrUnknownKind is returned by New for a Kind outside the closed set.
	ErrUnknownKind = errors.New("layout: unknown layout kind")

	// ErrEmptyInput signals an input with no rows (validators only).
	ErrEmptyInput = errors.New("layout: empty input")

	// ErrRaggedInput signals rows of differing lengths (validators only).
	ErrRaggedInput = errors.New("layout: rows have different lengths")

	// ErrNotSquare signals a block input whose row count != column count.
	ErrNotSquare = errors.New("layout: input is not square")

	// ErrOddSide signals a block input whose side cannot be split in halves.
	ErrOddSide = errors.New("layout: block side must be even")
)

// IndexError is the failure returned by Get.
//   - Kind is ErrForbiddenIndex or ErrOutOfBoundIndex.
//   - Stride is the declared shape value of the layout that rejected the call
//     (for block layouts the quadrant stride, or N for the outer check).
//   - Index is the offending coordinate for ErrForbiddenIndex.
//   - Offset and Length are the computed offset and buffer length for
//     ErrOutOfBoundIndex.
type IndexError struct {
	Kind   error
	Layout Kind
	Stride int
	Index  int
	Offset int
	Length int
}

// forbidden builds an ErrForbiddenIndex failure.
func forbidden(k Kind, stride, index int) *IndexError {
	return &IndexError{Kind: ErrForbiddenIndex, Layout: k, Stride: stride, Index: index}
}

// outOfBound builds an ErrOutOfBoundIndex failure.
func outOfBound(k Kind, stride, offset, length int) *IndexError {
	return &IndexError{Kind: ErrOutOfBoundIndex, Layout: k, Stride: stride, Offset: offset, Length: length}
}

// Error renders the failure with the numbers involved.
func (e *IndexError) Error() string {
	if e.Kind == ErrOutOfBoundIndex {
		return fmt.Sprintf("%s: %s stride is %d but offset %d exceeds buffer length %d",
			e.Kind, e.Layout, e.Stride, e.Offset, e.Length)
	}

	return fmt.Sprintf("%s: %s stride is %d but the index is %d",
		e.Kind, e.Layout, e.Stride, e.Index)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *IndexError) Unwrap() error { return e.Kind }
