// SPDX-License-Identifier: MIT

// Package tableio loads tables from files, picking the decoder from the
// file extension:
//
//	.yaml .yml                YAML fixture (ReadYAML)
//	.arrow .feather           Arrow IPC file
//	.arrows .ipc              Arrow IPC stream
//	.parquet                  Parquet
package tableio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tabmat/arrowtab"
	"github.com/katalvlaran/tabmat/table"
)

// Format identifies a supported file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatIPCFile
	FormatIPCStream
	FormatParquet
)

var formatNames = [...]string{"unknown", "yaml", "arrow-file", "arrow-stream", "parquet"}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[FormatUnknown]
	}

	return formatNames[f]
}

// Detect maps a path's extension (case-insensitive) to a Format.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".arrow", ".feather":
		return FormatIPCFile
	case ".arrows", ".ipc":
		return FormatIPCStream
	case ".parquet":
		return FormatParquet
	default:
		return FormatUnknown
	}
}

// Load opens path and decodes it according to Detect. opts are passed to
// the Arrow readers.
//
// Errors: ErrUnknownFormat, file errors, decoder errors.
func Load(ctx context.Context, path string, opts ...arrowtab.Option) (*table.Table, error) {
	format := Detect(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("tableio: Load(%q): %w", path, ErrUnknownFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: Load: %w", err)
	}
	defer f.Close()

	var t *table.Table
	switch format {
	case FormatYAML:
		t, err = ReadYAML(f)
	case FormatIPCFile:
		t, err = arrowtab.ReadIPCFile(f, opts...)
	case FormatIPCStream:
		t, err = arrowtab.ReadIPC(f, opts...)
	case FormatParquet:
		t, err = arrowtab.ReadParquet(ctx, f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("tableio: Load(%q) as %s: %w", path, format, err)
	}

	return t, nil
}
