// SPDX-License-Identifier: MIT

// Package layout - column-major storage.
// Mirror of row-major with the axes swapped: offset = j*stride + i where
// stride is the number of rows. The shape check compares i against stride.

package layout

import (
	"fmt"
	"strings"
)

// ColMajor is a dense column-major layout.
// The zero value is the empty instance returned by DefaultColMajor.
type ColMajor[T any] struct {
	buf    []T // owned flat storage, columns back to back
	stride int // rows per column, fixed at construction
}

var (
	_ Matrix[int]  = (*ColMajor[int])(nil)
	_ fmt.Stringer = (*ColMajor[int])(nil)
)

// DefaultColMajor returns an empty instance: no storage, stride 0.
func DefaultColMajor[T any]() *ColMajor[T] {
	return &ColMajor[T]{}
}

// NewColMajor walks destination columns and, for each column j, collects
// rows[r][j] for every row r.
//
// Behavior highlights:
//   - stride = len(rows); the column count is len(rows[0]).
//   - A row shorter than the first contributes the zero value for its missing
//     cells; extra cells in longer rows are ignored. A warning is logged.
//   - Empty rows yields the default instance.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewColMajor[T any](rows [][]T, opts ...Option) *ColMajor[T] {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		logBuilt(o.logger, ColMajorKind, 0, 0)
		return DefaultColMajor[T]()
	}
	warnRagged(o.logger, ColMajorKind, rows)

	cols := len(rows[0])
	buf := make([]T, len(rows)*cols)
	for j := 0; j < cols; j++ {
		base := j * len(rows)
		for r, row := range rows {
			if j < len(row) {
				buf[base+r] = row[j]
			}
		}
	}

	m := &ColMajor[T]{buf: buf, stride: len(rows)}
	logBuilt(o.logger, ColMajorKind, m.stride, len(m.buf))

	return m
}

// Stride returns the number of rows per column.
func (m *ColMajor[T]) Stride() int { return m.stride }

// Len returns the number of stored elements.
func (m *ColMajor[T]) Len() int { return len(m.buf) }

// Kind reports ColMajorKind.
func (m *ColMajor[T]) Kind() Kind { return ColMajorKind }

// offsetOf mirrors RowMajor.offsetOf with i and j swapped.
func (m *ColMajor[T]) offsetOf(i, j int) (int, error) {
	if j < 0 {
		return 0, forbidden(ColMajorKind, m.stride, j)
	}
	if i < 0 || i > m.stride {
		return 0, forbidden(ColMajorKind, m.stride, i)
	}
	if m.stride > 0 && j > (len(m.buf)-i)/m.stride {
		return 0, outOfBound(ColMajorKind, m.stride, saturatedOffset(j, m.stride, i), len(m.buf))
	}
	off := j*m.stride + i
	if off >= len(m.buf) {
		return 0, outOfBound(ColMajorKind, m.stride, off, len(m.buf))
	}

	return off, nil
}

// Get returns the element at row i, column j by value.
// Errors follow RowMajor.Get with the roles of i and j swapped.
// Complexity: O(1).
func (m *ColMajor[T]) Get(i, j int) (T, error) {
	off, err := m.offsetOf(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.buf[off], nil
}

// String renders the logical rows (not the storage order).
func (m *ColMajor[T]) String() string {
	if m.stride == 0 {
		return ""
	}
	cols := len(m.buf) / m.stride
	row := make([]T, cols)
	var sb strings.Builder
	for i := 0; i < m.stride; i++ {
		for j := 0; j < cols; j++ {
			row[j] = m.buf[j*m.stride+i]
		}
		writeRow(&sb, row)
	}

	return sb.String()
}
