// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tabmat/table"
	"github.com/katalvlaran/tabmat/vec"
)

// AsMatrix converts t into a homogeneous column-major matrix.
// MAIN DESCRIPTION:
//   - Three-phase pipeline: Type Inference → Destination Allocation →
//     Column Materialization.
//
// Implementation:
//   - Stage 1: validate the table and the row labels.
//   - Stage 2: InferType over all columns.
//   - Stage 3: allocate the nrow×ncol buffer with labels (and the integer64
//     marker when integer64 values land in a Double buffer).
//   - Stage 4: nrow == 0 ⇒ return right away, untouched by the Filler.
//   - Stage 5: materialize every column through the Filler.
//   - Stage 6: restore the buffer's natural class unless
//     WithRetainInteger64Class was given.
//
// Behavior highlights:
//   - Precision-loss reports from the Filler are non-fatal: they go to the
//     warning handler and the logger, tagged with the 1-based column.
//   - Any Filler error or ErrInternal aborts the whole call; no partial
//     matrix is returned.
//
// Inputs:
//   - t: table with at least one column (equal lengths guaranteed by table.New).
//   - rowNames: nil or exactly NRow() labels.
//
// Errors:
//   - ErrNilTable, ErrNoColumns, ErrDimensionMismatch, ErrInternal, Filler errors.
//
// Complexity:
//   - Time O(nrow*ncol), Space O(nrow*ncol) plus one pre-coerced column.
func AsMatrix(t *table.Table, rowNames []string, opts ...Option) (*Matrix, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", ctxAsMatrix, ErrNilTable)
	}
	if t.NCol() == 0 {
		return nil, fmt.Errorf("%s: %w", ctxAsMatrix, ErrNoColumns)
	}
	nrow, ncol := t.NRow(), t.NCol()
	if rowNames != nil && len(rowNames) != nrow {
		return nil, fmt.Errorf("%s: %d row names for %d rows: %w", ctxAsMatrix, len(rowNames), nrow, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	cols := t.Columns()
	typ, wide := InferType(cols)
	o.logger.Debug("destination type resolved",
		"type", typ.String(), "integer64", wide, "nrow", nrow, "ncol", ncol)

	a, err := allocate(nrow, ncol, typ, wide, rowNames, t.Names())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAsMatrix, err)
	}
	if nrow == 0 {
		return a.m, nil
	}

	if err = materialize(a.m, cols, wide, &o); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAsMatrix, err)
	}
	if a.m.wideInteger && !o.retainInteger64 {
		a.m.data.Attrs().SetClass(a.natural)
	}

	return a.m, nil
}

// Convert is the caller-facing wrapper around AsMatrix.
//
// Implementation:
//   - Stage 1: resolve row labels: a row-label column (by name or index) is
//     rendered as text and removed from the data; otherwise WithRowNames.
//   - Stage 2: a table left without columns yields an nrow×0 Logical matrix.
//   - Stage 3: delegate to AsMatrix.
//
// Errors:
//   - ErrNilTable, ErrDimensionMismatch, table.ErrUnknownColumn,
//     table.ErrColumnIndex, vec.ErrUnsupportedCoercion (non-atomic label
//     column), plus everything AsMatrix returns.
func Convert(t *table.Table, opts ...Option) (*Matrix, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", ctxConvert, ErrNilTable)
	}
	o := gatherOptions(opts...)

	rowNames := o.rowNames
	labelCol := o.rowNamesIndex
	if o.rowNamesCol != "" {
		j, err := t.Index(o.rowNamesCol)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxConvert, err)
		}
		labelCol = j
	}
	if labelCol != noRowNamesIndex {
		labels, rest, err := splitRowNames(t, labelCol)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxConvert, err)
		}
		rowNames, t = labels, rest
	}
	if rowNames != nil && len(rowNames) != t.NRow() {
		return nil, fmt.Errorf("%s: %d row names for %d rows: %w", ctxConvert, len(rowNames), t.NRow(), ErrDimensionMismatch)
	}

	if t.NCol() == 0 {
		a, err := allocate(t.NRow(), 0, vec.TypeLogical, false, rowNames, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxConvert, err)
		}
		a.m.dimnames.Cols = []string{}
		return a.m, nil
	}

	return AsMatrix(t, rowNames, opts...)
}

// splitRowNames renders column j as labels and returns the table without it.
func splitRowNames(t *table.Table, j int) ([]string, *table.Table, error) {
	col, err := t.Column(j)
	if err != nil {
		return nil, nil, err
	}
	text, err := vec.AsCharacter(col)
	if err != nil {
		return nil, nil, fmt.Errorf("row names from column %d: %w", j+1, err)
	}
	labels := make([]string, len(text.Data))
	for i, c := range text.Data {
		labels[i] = c.String()
	}
	rest, err := t.Drop(j)
	if err != nil {
		return nil, nil, err
	}

	return labels, rest, nil
}
