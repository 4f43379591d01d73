// Package tabmat turns heterogeneous columnar tables into homogeneous,
// column-major matrices.
//
// Everything is organized under small packages:
//
//	vec/       element types, the type lattice, typed vectors, NA sentinels, integer64
//	table/     ordered, named, equal-length columns
//	recycle/   bulk copy-with-coercion into a slice of a destination vector
//	matrix/    type inference, destination allocation, column materialization
//	arrowtab/  Arrow records, tables, IPC and Parquet files → table.Table
//	tableio/   YAML fixtures and extension-based file loading
//	cmd/asmatrix  command-line front end
//
// Quick start:
//
//	t, _ := table.New([]string{"flag", "n"},
//		vec.NewLogical(vec.True, vec.False), vec.NewInteger(1, 2))
//	m, err := matrix.AsMatrix(t, nil) // 2x2 integer matrix [1 0 1 2]
//
// integer64 columns are kept exact: next to raw, logical or integer
// columns they produce a double buffer holding int64 bit patterns
// (Matrix.IsWideInteger), next to double or complex columns they are
// rendered as decimal text.
package tabmat
