// Package lvlayout is a small family of dense 2-D array layouts that share one
// indexing contract: build once from a rectangular [][]T, then read (i, j).
//
// What is inside?
//
//	layout/ — RowMajor, ColMajor and Block (quadrant) storage, the Matrix[T]
//	          interface, the ForbiddenIndex / OutOfBoundIndex error taxonomy,
//	          opt-in input validators and go-kit logging options.
//
// The interesting part is the address arithmetic:
//
//	row-major   offset = i*stride + j   (stride = columns)
//	col-major   offset = j*stride + i   (stride = rows)
//	block       quadrant = (i/h)*2 + (j/h), then (i%h, j%h) row-major, h = N/2
//
// Every Get validates before it reads and returns an error value instead of
// panicking.
//
//	go get github.com/katalvlaran/lvlayout/layout
package lvlayout
