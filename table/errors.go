// SPDX-License-Identifier: MIT

package table

import "errors"

// Sentinel errors of the table package.
var (
	// ErrRaggedColumns is returned when columns differ in length.
	ErrRaggedColumns = errors.New("table: columns differ in length")

	// ErrNameCount is returned when the number of names differs from the
	// number of columns.
	ErrNameCount = errors.New("table: name count does not match column count")

	// ErrNilColumn is returned when a column is nil.
	ErrNilColumn = errors.New("table: nil column")

	// ErrColumnIndex is returned for a column index outside [0, NCol()).
	ErrColumnIndex = errors.New("table: column index out of range")

	// ErrUnknownColumn is returned when a column name is not present.
	ErrUnknownColumn = errors.New("table: unknown column")
)
