// SPDX-License-Identifier: MIT

package arrowtab

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/katalvlaran/tabmat/table"
)

// Option configures the readers.
type Option func(*options)

type options struct {
	mem       memory.Allocator
	batchSize int64
}

// DefaultBatchSize is the number of Parquet rows decoded per batch.
const DefaultBatchSize = 64 * 1024

const (
	panicAllocatorNil = "arrowtab: WithAllocator: allocator must be non-nil"
	panicBatchSize    = "arrowtab: WithBatchSize: size must be > 0"
)

// WithAllocator sets the allocator used for decoded Arrow buffers
// (default memory.DefaultAllocator). Panics on nil.
func WithAllocator(mem memory.Allocator) Option {
	if mem == nil {
		panic(panicAllocatorNil)
	}

	return func(o *options) { o.mem = mem }
}

// WithBatchSize sets the Parquet decode batch size. Panics on n <= 0.
func WithBatchSize(n int64) Option {
	if n <= 0 {
		panic(panicBatchSize)
	}

	return func(o *options) { o.batchSize = n }
}

func gatherOptions(user ...Option) options {
	o := options{mem: memory.DefaultAllocator, batchSize: DefaultBatchSize}
	for _, set := range user {
		set(&o)
	}

	return o
}

// ReadIPC reads an Arrow IPC stream to its end and converts all batches.
func ReadIPC(r io.Reader, opts ...Option) (*table.Table, error) {
	if r == nil {
		return nil, fmt.Errorf("arrowtab: ReadIPC: %w", ErrNilInput)
	}
	o := gatherOptions(opts...)

	rdr, err := ipc.NewReader(r, ipc.WithAllocator(o.mem))
	if err != nil {
		return nil, fmt.Errorf("arrowtab: ReadIPC: %w", err)
	}
	defer rdr.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err = rdr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("arrowtab: ReadIPC: %w", err)
	}

	return fromRecords(rdr.Schema(), recs)
}

// ReadIPCFile reads every record batch of an Arrow IPC file (Feather v2).
func ReadIPCFile(r ipc.ReadAtSeeker, opts ...Option) (*table.Table, error) {
	if r == nil {
		return nil, fmt.Errorf("arrowtab: ReadIPCFile: %w", ErrNilInput)
	}
	o := gatherOptions(opts...)

	rdr, err := ipc.NewFileReader(r, ipc.WithAllocator(o.mem))
	if err != nil {
		return nil, fmt.Errorf("arrowtab: ReadIPCFile: %w", err)
	}
	defer rdr.Close()

	recs := make([]arrow.Record, 0, rdr.NumRecords())
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for i := 0; i < rdr.NumRecords(); i++ {
		rec, err := rdr.Record(i)
		if err != nil {
			return nil, fmt.Errorf("arrowtab: ReadIPCFile: batch %d: %w", i, err)
		}
		rec.Retain()
		recs = append(recs, rec)
	}

	return fromRecords(rdr.Schema(), recs)
}

// ReadParquet decodes a Parquet file through pqarrow and converts it.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker, opts ...Option) (*table.Table, error) {
	if r == nil {
		return nil, fmt.Errorf("arrowtab: ReadParquet: %w", ErrNilInput)
	}
	o := gatherOptions(opts...)

	props := parquet.NewReaderProperties(o.mem)
	tbl, err := pqarrow.ReadTable(ctx, r, props, pqarrow.ArrowReadProperties{BatchSize: o.batchSize}, o.mem)
	if err != nil {
		return nil, fmt.Errorf("arrowtab: ReadParquet: %w", err)
	}
	defer tbl.Release()

	return FromTable(tbl)
}

// fromRecords assembles batches sharing schema into a table and converts it.
func fromRecords(schema *arrow.Schema, recs []arrow.Record) (*table.Table, error) {
	tbl := array.NewTableFromRecords(schema, recs)
	defer tbl.Release()

	return FromTable(tbl)
}
