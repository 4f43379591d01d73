// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Conversions MUST return these sentinels and tests MUST check them
// via errors.Is. No conversion panics on user-triggered error conditions;
// panics are reserved for nonsensical Option values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Sentinels are wrapped with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil table -> no columns -> row-label shape -> fill failures -> internal.

var (
	// ErrNilTable indicates that a nil *table.Table was passed in.
	ErrNilTable = errors.New("matrix: table is nil")

	// ErrNoColumns is returned by AsMatrix for a table without columns.
	// Convert handles that case itself and returns an nrow×0 matrix.
	ErrNoColumns = errors.New("matrix: table has no columns")

	// ErrDimensionMismatch indicates row labels whose length differs from nrow.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	// Public indexers (At, Int64At) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInternal marks a broken invariant of type inference: a column
	// reached a List destination that none of the boxing paths can handle.
	// It is fatal and indicates a bug, not bad user data.
	ErrInternal = errors.New("matrix: internal error")

	// ErrBadShape is returned when an export needs a non-empty matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNotNumeric is returned when a numeric export meets complex,
	// character or list cells.
	ErrNotNumeric = errors.New("matrix: matrix is not numeric")

	// ErrNotInteger64 is returned by Int64At on a matrix without integer64 cells.
	ErrNotInteger64 = errors.New("matrix: cells are not integer64")

	// ErrNilMatrix indicates that a nil *Matrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
