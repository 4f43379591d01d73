// Package arrowtab loads Apache Arrow data into table.Table values.
//
// Column mapping:
//
//	bool                                → logical
//	int8, int16, int32, uint8, uint16   → integer
//	int64, uint32                       → integer64 (class "integer64")
//	float32, float64                    → double
//	string, large_string                → character
//	list<T>, large_list<T>              → list of per-row vectors of T
//
// Nulls become the missing value of the target type and a null list entry
// becomes a nil element. An int64 equal to math.MinInt64 reads back as the
// integer64 missing value. Any other Arrow type yields ErrUnsupportedType.
//
// Records, tables, IPC streams, IPC files and Parquet files are supported.
// Every Arrow object allocated here is released before returning.
package arrowtab
