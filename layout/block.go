// SPDX-License-Identifier: MIT

// Package layout - block (quadrant) storage.
//
// Purpose:
//   - Split an N×N input into four h×h row-major quadrants (h = N/2), each with
//     its own buffer: 0 = top-left, 1 = top-right, 2 = bottom-left, 3 = bottom-right.
//   - Get selects the quadrant (i/h)*2 + (j/h) and delegates (i%h, j%h) to it,
//     forwarding the quadrant's result unchanged.
//
// Notes:
//   - For odd N the halves are truncated: the last row and column are not
//     stored in any quadrant and Get rejects them with ErrForbiddenIndex.

package layout

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
)

// Quadrant indexes the four sub-matrices of a Block.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Block is a square layout stored as four independent row-major quadrants.
// The zero value is the empty instance returned by DefaultBlock.
type Block[T any] struct {
	quads [4]*RowMajor[T] // nil for the empty instance
	side  int             // original N, not the half
}

var (
	_ Matrix[int]  = (*Block[int])(nil)
	_ fmt.Stringer = (*Block[int])(nil)
)

// DefaultBlock returns an empty instance with side 0 and no quadrants.
func DefaultBlock[T any]() *Block[T] {
	return &Block[T]{}
}

// NewBlock copies the four h×h windows of rows into owned quadrants.
//
// Behavior highlights:
//   - N = len(rows); column windows also use h = N/2, so the input is assumed
//     square (see ValidateBlockInput).
//   - Missing cells of short rows are zero-filled; a warning is logged.
//   - Odd N logs a warning and drops the last row and column.
//   - No quadrant aliases rows or another quadrant.
//
// Complexity: Time O(N²), Space O(N²).
func NewBlock[T any](rows [][]T, opts ...Option) *Block[T] {
	o := gatherOptions(opts...)
	n := len(rows)
	if n == 0 {
		logBuilt(o.logger, BlockKind, 0, 0)
		return DefaultBlock[T]()
	}
	warnRagged(o.logger, BlockKind, rows)
	if n%2 != 0 {
		level.Warn(o.logger).Log("msg", "odd block side, last row and column are not stored",
			"layout", BlockKind, "side", n)
	}

	h := n / 2
	b := &Block[T]{side: n}
	for q := TopLeft; q <= BottomRight; q++ {
		r0 := int(q/2) * h
		c0 := int(q%2) * h
		b.quads[q] = NewRowMajor(window(rows, r0, c0, h))
	}
	logBuilt(o.logger, BlockKind, n, b.Len())

	return b
}

// window copies the h×h region of rows starting at (r0, c0).
// Cells beyond a short row are left at the zero value.
func window[T any](rows [][]T, r0, c0, h int) [][]T {
	out := make([][]T, h)
	for r := 0; r < h; r++ {
		out[r] = make([]T, h)
		src := rows[r0+r]
		if c0 < len(src) {
			copy(out[r], src[c0:min(c0+h, len(src))])
		}
	}

	return out
}

// Stride returns the original side N.
func (b *Block[T]) Stride() int { return b.side }

// Len returns the number of elements held across all quadrants.
func (b *Block[T]) Len() int {
	n := 0
	for _, q := range b.quads {
		if q != nil {
			n += q.Len()
		}
	}

	return n
}

// Kind reports BlockKind.
func (b *Block[T]) Kind() Kind { return BlockKind }

// Quadrant returns the row-major sub-matrix q, or nil for the empty instance
// or a q outside TopLeft..BottomRight.
func (b *Block[T]) Quadrant(q Quadrant) *RowMajor[T] {
	if q < TopLeft || q > BottomRight {
		return nil
	}

	return b.quads[q]
}

// Get returns the element at (i, j) of the original input.
//
// Implementation:
//   - Stage 1: reject negative coordinates, an empty/degenerate layout (h == 0)
//     and coordinates whose quadrant row or column would exceed 1, with
//     ErrForbiddenIndex against the outer side N.
//   - Stage 2: delegate (i%h, j%h) to quadrant (i/h)*2 + (j/h) and return its
//     result as is; failures there describe the quadrant's own stride.
//
// Complexity: O(1).
func (b *Block[T]) Get(i, j int) (T, error) {
	var zero T
	h := b.side / 2
	switch {
	case i < 0 || h == 0:
		return zero, forbidden(BlockKind, b.side, i)
	case j < 0:
		return zero, forbidden(BlockKind, b.side, j)
	case i/h > 1:
		return zero, forbidden(BlockKind, b.side, i)
	case j/h > 1:
		return zero, forbidden(BlockKind, b.side, j)
	}

	return b.quads[(i/h)*2+(j/h)].Get(i%h, j%h)
}

// String renders the stored 2h×2h logical matrix row by row.
func (b *Block[T]) String() string {
	h := b.side / 2
	if h == 0 {
		return ""
	}
	var sb strings.Builder
	row := make([]T, 2*h)
	for i := 0; i < 2*h; i++ {
		for j := range row {
			row[j], _ = b.Get(i, j)
		}
		writeRow(&sb, row)
	}

	return sb.String()
}
