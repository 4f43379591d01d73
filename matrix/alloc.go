// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tabmat/vec"
)

// ---------- error context tags ----------

const (
	ctxAsMatrix    = "AsMatrix"    // pipeline entry point
	ctxConvert     = "Convert"     // wrapper entry point
	ctxAllocate    = "allocate"    // destination allocation
	ctxMaterialize = "materialize" // column materialization
	ctxAt          = "At"          // indexer
	ctxInt64At     = "Int64At"     // integer64 indexer
	ctxCellString  = "CellString"  // cell formatter
	ctxToGonum     = "ToGonum"     // gonum export
)

// allocation is the product of Destination Allocation: the empty matrix and
// the class its buffer had before the integer64 marker was attached.
type allocation struct {
	m       *Matrix
	natural []string
}

// allocate builds the empty nrow×ncol destination of type typ.
//
// Implementation:
//   - Stage 1: allocate a zero-valued buffer of nrow*ncol elements.
//   - Stage 2: attach row labels (as given, nil allowed) and column labels.
//   - Stage 3: remember the natural class; for integer64 into Double attach
//     the "integer64" class so the Filler stores int64 bit patterns.
//
// Complexity:
//   - Time O(nrow*ncol), Space O(nrow*ncol).
func allocate(nrow, ncol int, typ vec.Type, wide bool, rowNames, colNames []string) (allocation, error) {
	data, err := vec.New(typ, nrow*ncol)
	if err != nil {
		return allocation{}, fmt.Errorf("%s: %w", ctxAllocate, err)
	}
	m := &Matrix{
		nrow: nrow,
		ncol: ncol,
		data: data,
		dimnames: Dimnames{
			Rows: cloneLabels(rowNames),
			Cols: cloneLabels(colNames),
		},
	}
	natural := data.Attrs().Class()
	if wide && typ == vec.TypeDouble {
		data.Attrs().SetClass([]string{vec.ClassInteger64})
		m.wideInteger = true
	}

	return allocation{m: m, natural: natural}, nil
}

// cloneLabels copies labels, keeping nil as nil.
func cloneLabels(labels []string) []string {
	if labels == nil {
		return nil
	}

	return append(make([]string, 0, len(labels)), labels...)
}
