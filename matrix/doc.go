// Package matrix converts a columnar table into a homogeneous matrix.
//
// The conversion runs in three phases:
//
//   - Type Inference (InferType) folds the column types over the vec type
//     lattice raw < logical < integer < double < complex < character < list.
//     List absorbs everything; integer64 columns are set aside and resolved
//     afterwards (below double ⇒ double, double or complex ⇒ character).
//   - Destination Allocation builds an nrow×ncol column-major buffer of the
//     resolved type with row and column labels. When integer64 values land in
//     a double buffer the buffer is tagged "integer64" for the fill.
//   - Column Materialization pre-coerces each column where the Filler cannot
//     (boxing into lists, rendering integer64 and complex as text) and hands
//     it to the Filler, by default recycle.Into.
//
// AsMatrix is the pipeline itself; Convert adds row labels taken from a
// column or given explicitly. Precision-loss reports from the Filler are
// delivered as Warning values and never abort the conversion.
//
// Numeric matrices export to gonum through (*Matrix).ToGonum.
package matrix
