// SPDX-License-Identifier: MIT
// Package: layout
//
// Purpose:
//  - Opt-in validation of construction input. Constructors stay permissive
//    and never fail; callers that want strictness validate first.
//  - Construction diagnostics shared by all layouts (debug summary, warnings).
//
// Determinism & Performance:
//  - All checks are pure, O(rows) and allocate nothing beyond the error.

package layout

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// validatorErrorf wraps a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures rows is non-empty and every row has the length
// of the first one.
//
// Errors: ErrEmptyInput, ErrRaggedInput (wrapped with the row number).
// Complexity: O(rows).
func ValidateRectangular[T any](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRectangular", ErrEmptyInput)
	}
	if r := firstRaggedRow(rows); r >= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", r), ErrRaggedInput)
	}

	return nil
}

// ValidateBlockInput ensures rows is a rectangular, square input with an even
// side, i.e. one that NewBlock covers without dropping any element.
//
// Errors: ErrEmptyInput, ErrRaggedInput, ErrNotSquare, ErrOddSide.
// Complexity: O(rows).
func ValidateBlockInput[T any](rows [][]T) error {
	if err := ValidateRectangular(rows); err != nil {
		return validatorErrorf("ValidateBlockInput", err)
	}
	if len(rows) != len(rows[0]) {
		return validatorErrorf("ValidateBlockInput", ErrNotSquare)
	}
	if len(rows)%2 != 0 {
		return validatorErrorf("ValidateBlockInput", ErrOddSide)
	}

	return nil
}

// firstRaggedRow returns the index of the first row whose length differs
// from rows[0], or -1.
func firstRaggedRow[T any](rows [][]T) int {
	if len(rows) == 0 {
		return -1
	}
	want := len(rows[0])
	for r := 1; r < len(rows); r++ {
		if len(rows[r]) != want {
			return r
		}
	}

	return -1
}

// warnRagged logs when construction input is not rectangular.
func warnRagged[T any](logger log.Logger, k Kind, rows [][]T) {
	if r := firstRaggedRow(rows); r >= 0 {
		level.Warn(logger).Log("msg", "ragged input, trusting first row length",
			"layout", k, "row", r, "want", len(rows[0]), "got", len(rows[r]))
	}
}

// logBuilt emits the construction summary.
func logBuilt(logger log.Logger, k Kind, stride, n int) {
	level.Debug(logger).Log("msg", "layout built", "layout", k, "stride", stride, "len", n)
}
