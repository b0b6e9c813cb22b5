// SPDX-License-Identifier: MIT

package layout

import "fmt"

// New builds the layout named by kind from rows.
// It is the single polymorphic entry point over the closed set of layouts;
// the concrete constructors remain available for callers that want the
// concrete type.
//
// Errors: ErrUnknownKind (wrapped with the offending value).
func New[T any](kind Kind, rows [][]T, opts ...Option) (Matrix[T], error) {
	switch kind {
	case RowMajorKind:
		return NewRowMajor(rows, opts...), nil
	case ColMajorKind:
		return NewColMajor(rows, opts...), nil
	case BlockKind:
		return NewBlock(rows, opts...), nil
	default:
		return nil, fmt.Errorf("New(%d): %w", uint8(kind), ErrUnknownKind)
	}
}

// Default returns the empty instance of kind.
//
// Errors: ErrUnknownKind.
func Default[T any](kind Kind) (Matrix[T], error) {
	switch kind {
	case RowMajorKind:
		return DefaultRowMajor[T](), nil
	case ColMajorKind:
		return DefaultColMajor[T](), nil
	case BlockKind:
		return DefaultBlock[T](), nil
	default:
		return nil, fmt.Errorf("Default(%d): %w", uint8(kind), ErrUnknownKind)
	}
}
