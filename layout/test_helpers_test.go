// SPDX-License-Identifier: MIT
// Package layout_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the layout tests.

package layout_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlayout/layout"
)

// grid3x4 is the 3×4 fixture 1..12.
func grid3x4() [][]int {
	return [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
}

// seq builds an r×c grid filled with 1..r*c in row order.
func seq(r, c int) [][]int {
	out := make([][]int, r)
	v := 1
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = v
			v++
		}
	}

	return out
}

// randomGrid builds an r×c grid with a fixed seed.
func randomGrid(r, c int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, r)
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = rng.Intn(1 << 20)
		}
	}

	return out
}

// requireIndexError asserts err is an *IndexError wrapping want and returns it.
func requireIndexError(t *testing.T, err error, want error) *layout.IndexError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, want)
	var ie *layout.IndexError
	require.True(t, errors.As(err, &ie), "expected *layout.IndexError, got %T", err)

	return ie
}

// bufferLogger returns a logfmt logger writing into the returned buffer.
func bufferLogger() (log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return log.NewLogfmtLogger(log.NewSyncWriter(&buf)), &buf
}
