// SPDX-License-Identifier: MIT

// Package layout - row-major storage.
//
// Purpose:
//   - One flat buffer holding rows back to back; offset = i*stride + j.
//   - Two-stage check in Get: declared shape first (j > stride), then the
//     computed offset against the buffer length.
//
// Complexity quicksheet:
//   - NewRowMajor: O(r*c); Get: O(1).

package layout

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// RowMajor is a dense row-major layout.
//   - buf holds the elements in row order (len == rows*stride for rectangular input).
//   - stride is the length of the first input row.
//
// The zero value is the empty instance returned by DefaultRowMajor.
type RowMajor[T any] struct {
	buf    []T // owned flat storage, never resized
	stride int // columns per row, fixed at construction
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*RowMajor[int])(nil)
	_ fmt.Stringer = (*RowMajor[int])(nil)
)

// DefaultRowMajor returns an empty instance: no storage, stride 0.
// Every Get on it fails with ErrOutOfBoundIndex.
func DefaultRowMajor[T any]() *RowMajor[T] {
	return &RowMajor[T]{}
}

// NewRowMajor flattens rows row by row into one owned buffer.
//
// Behavior highlights:
//   - stride = len(rows[0]); row lengths are not validated (see
//     ValidateRectangular). Ragged rows are concatenated as given and a
//     warning is logged.
//   - Empty rows yields the default instance.
//   - The input is copied; later changes to rows do not affect the matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewRowMajor[T any](rows [][]T, opts ...Option) *RowMajor[T] {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		logBuilt(o.logger, RowMajorKind, 0, 0)
		return DefaultRowMajor[T]()
	}
	warnRagged(o.logger, RowMajorKind, rows)

	n := 0
	for _, row := range rows {
		n += len(row)
	}
	buf := make([]T, 0, n)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	m := &RowMajor[T]{buf: buf, stride: len(rows[0])}
	logBuilt(o.logger, RowMajorKind, m.stride, len(m.buf))

	return m
}

// Stride returns the number of columns per row.
func (m *RowMajor[T]) Stride() int { return m.stride }

// Len returns the number of stored elements.
func (m *RowMajor[T]) Len() int { return len(m.buf) }

// Kind reports RowMajorKind.
func (m *RowMajor[T]) Kind() Kind { return RowMajorKind }

// offsetOf validates (i, j) and computes the flat offset.
//
// Implementation:
//   - Stage 1: negative coordinates or j > stride → ErrForbiddenIndex.
//     j == stride passes on purpose and is left to stage 2.
//   - Stage 2: offset = i*stride + j; offset >= len(buf) → ErrOutOfBoundIndex.
func (m *RowMajor[T]) offsetOf(i, j int) (int, error) {
	if i < 0 {
		return 0, forbidden(RowMajorKind, m.stride, i)
	}
	if j < 0 || j > m.stride {
		return 0, forbidden(RowMajorKind, m.stride, j)
	}
	// Guard i*stride against overflow before multiplying.
	if m.stride > 0 && i > (len(m.buf)-j)/m.stride {
		return 0, outOfBound(RowMajorKind, m.stride, saturatedOffset(i, m.stride, j), len(m.buf))
	}
	off := i*m.stride + j
	if off >= len(m.buf) {
		return 0, outOfBound(RowMajorKind, m.stride, off, len(m.buf))
	}

	return off, nil
}

// Get returns the element at row i, column j by value.
//
// Errors:
//   - *IndexError wrapping ErrForbiddenIndex when j > Stride() or a
//     coordinate is negative.
//   - *IndexError wrapping ErrOutOfBoundIndex when i*Stride()+j has no
//     backing storage.
//
// Complexity: O(1).
func (m *RowMajor[T]) Get(i, j int) (T, error) {
	off, err := m.offsetOf(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.buf[off], nil
}

// String renders one bracketed line per stored row.
func (m *RowMajor[T]) String() string {
	if m.stride == 0 {
		return ""
	}
	var sb strings.Builder
	for start := 0; start < len(m.buf); start += m.stride {
		end := min(start+m.stride, len(m.buf))
		writeRow(&sb, m.buf[start:end])
	}

	return sb.String()
}

// writeRow appends "[a, b, c]\n" to sb.
func writeRow[T any](sb *strings.Builder, row []T) {
	sb.WriteString(_fmtRowOpen)
	for k, v := range row {
		if k > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteString(_fmtRowClose)
}

// saturatedOffset computes a*stride + b, clamping to the max int on overflow.
// Only used to report an offset that cannot be represented.
func saturatedOffset(a, stride, b int) int {
	const maxInt = int(^uint(0) >> 1)
	if stride != 0 && a > (maxInt-b)/stride {
		return maxInt
	}

	return a*stride + b
}
