// Package layout_test contains unit tests for the row-major layout.
package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlayout/layout"
)

// TestRowMajor3x4 checks the reference 3×4 scenario.
func TestRowMajor3x4(t *testing.T) {
	m := layout.NewRowMajor(grid3x4())
	require.Equal(t, 4, m.Stride())
	require.Equal(t, 12, m.Len())
	require.Equal(t, layout.RowMajorKind, m.Kind())

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	v, err = m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = m.Get(2, 3)
	require.NoError(t, err)
	require.Equal(t, 12, v)

	v, err = m.Get(5, 9) // far outside: must fail, never panic
	require.Error(t, err)
	require.NotEqual(t, 14, v)
	require.Zero(t, v)
}

// TestRowMajor8x12 covers a larger rectangular input.
func TestRowMajor8x12(t *testing.T) {
	m := layout.NewRowMajor(seq(8, 12))

	for _, tc := range []struct{ i, j, want int }{
		{2, 3, 28},
		{5, 7, 68},
		{7, 11, 96},
		{5, 9, 70},
	} {
		v, err := m.Get(tc.i, tc.j)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "Get(%d,%d)", tc.i, tc.j)
	}
}

// TestRowMajorErrors covers the two-stage check and its boundary.
func TestRowMajorErrors(t *testing.T) {
	t.Parallel()
	m := layout.NewRowMajor(grid3x4())

	tests := []struct {
		name    string
		i, j    int
		want    int
		wantErr error
	}{
		{"j == stride wraps to next row", 0, 4, 5, nil},
		{"j == stride on middle row", 1, 4, 9, nil},
		{"j == stride on last row", 2, 4, 0, layout.ErrOutOfBoundIndex},
		{"j > stride", 0, 5, 0, layout.ErrForbiddenIndex},
		{"row past end", 3, 0, 0, layout.ErrOutOfBoundIndex},
		{"both far out, shape first", 5, 9, 0, layout.ErrForbiddenIndex},
		{"negative row", -1, 0, 0, layout.ErrForbiddenIndex},
		{"negative col", 0, -1, 0, layout.ErrForbiddenIndex},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := m.Get(tc.i, tc.j)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.want, v)
				return
			}
			requireIndexError(t, err, tc.wantErr)
			assert.Zero(t, v)
		})
	}
}

// TestRowMajorErrorDetails checks the numbers carried by *IndexError.
func TestRowMajorErrorDetails(t *testing.T) {
	m := layout.NewRowMajor(grid3x4())

	_, err := m.Get(5, 9)
	ie := requireIndexError(t, err, layout.ErrForbiddenIndex)
	require.Equal(t, 4, ie.Stride)
	require.Equal(t, 9, ie.Index)
	require.Equal(t, layout.RowMajorKind, ie.Layout)
	require.Equal(t, "layout: forbidden index: row-major stride is 4 but the index is 9", err.Error())
	require.NotErrorIs(t, err, layout.ErrOutOfBoundIndex)

	_, err = m.Get(2, 4)
	ie = requireIndexError(t, err, layout.ErrOutOfBoundIndex)
	require.Equal(t, 4, ie.Stride)
	require.Equal(t, 12, ie.Offset)
	require.Equal(t, 12, ie.Length)
	require.Equal(t, "layout: out of bound index: row-major stride is 4 but offset 12 exceeds buffer length 12", err.Error())
	require.NotErrorIs(t, err, layout.ErrForbiddenIndex)
}

// TestRowMajorHugeRow ensures offset overflow is reported, not wrapped around.
func TestRowMajorHugeRow(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)
	m := layout.NewRowMajor(grid3x4())

	_, err := m.Get(maxInt, 0)
	ie := requireIndexError(t, err, layout.ErrOutOfBoundIndex)
	require.Equal(t, maxInt, ie.Offset)

	_, err = m.Get(maxInt/4, 3)
	requireIndexError(t, err, layout.ErrOutOfBoundIndex)
}

// TestRowMajorDefault verifies the empty instance rejects everything.
func TestRowMajorDefault(t *testing.T) {
	for _, m := range []*layout.RowMajor[int]{
		layout.DefaultRowMajor[int](),
		{}, // zero value
		layout.NewRowMajor[int](nil),
	} {
		require.Equal(t, 0, m.Stride())
		require.Equal(t, 0, m.Len())
		_, err := m.Get(0, 0)
		requireIndexError(t, err, layout.ErrOutOfBoundIndex)
		_, err = m.Get(0, 1)
		requireIndexError(t, err, layout.ErrForbiddenIndex)
		require.Empty(t, m.String())
	}
}

// TestRowMajorOwnsBuffer ensures later changes to the input are not observed.
func TestRowMajorOwnsBuffer(t *testing.T) {
	in := grid3x4()
	m := layout.NewRowMajor(in)
	in[1][1] = 600

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 6, v)
}

// TestRowMajorRagged pins the permissive handling of uneven rows: rows are
// concatenated and only the first row's length is trusted.
func TestRowMajorRagged(t *testing.T) {
	logger, buf := bufferLogger()
	m := layout.NewRowMajor([][]int{{1, 2, 3}, {4, 5}, {6, 7, 8}}, layout.WithLogger(logger))
	require.Equal(t, 3, m.Stride())
	require.Equal(t, 8, m.Len())

	v, err := m.Get(1, 2) // offset 5 belongs to the third input row
	require.NoError(t, err)
	require.Equal(t, 6, v)

	require.Contains(t, buf.String(), "level=warn")
	require.Contains(t, buf.String(), "ragged input")
	require.Contains(t, buf.String(), "row=1")
}

// TestRowMajorString renders one line per row.
func TestRowMajorString(t *testing.T) {
	m := layout.NewRowMajor([][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestRowMajorGenericElement exercises a non-numeric element type.
func TestRowMajorGenericElement(t *testing.T) {
	type cell struct {
		r, c int
	}
	m := layout.NewRowMajor([][]cell{{{0, 0}, {0, 1}}, {{1, 0}, {1, 1}}})

	v, err := m.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, cell{1, 0}, v)
}
