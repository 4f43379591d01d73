// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tabmat/matrix"
	"github.com/katalvlaran/tabmat/table"
	"github.com/katalvlaran/tabmat/tableio"
)

// Action is the state shared by a single command run.
type Action struct {
	cmd    *cobra.Command
	cfg    Config
	logger *slog.Logger
}

// newAction resolves the configuration (file, then flags) and the logger.
func newAction(cmd *cobra.Command) (*Action, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg, cmd)
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &Action{cmd: cmd, cfg: cfg, logger: logger}, nil
}

// load reads the table named on the command line.
func (a *Action) load(path string) (*table.Table, error) {
	t, err := tableio.Load(a.cmd.Context(), path)
	if err != nil {
		return nil, errors.Wrap(err, "load table")
	}
	a.logger.Debug("table loaded", "path", path, "nrow", t.NRow(), "ncol", t.NCol())

	return t, nil
}

func convertTable(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	t, err := a.load(args[0])
	if err != nil {
		return err
	}

	opts := []matrix.Option{matrix.WithLogger(a.logger)}
	if a.cfg.RowNames != "" {
		opts = append(opts, matrix.WithRowNamesColumn(a.cfg.RowNames))
	}
	if a.cfg.RetainInteger64 {
		opts = append(opts, matrix.WithRetainInteger64Class())
	}
	m, err := matrix.Convert(t, opts...)
	if err != nil {
		return errors.Wrapf(err, "convert %s", args[0])
	}

	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case formatCSV:
		err = writeCSV(out, m)
	case formatGonum:
		err = writeGonum(out, m)
	default:
		err = writeText(out, m)
	}

	return errors.Wrap(err, "write matrix")
}

// inferTable reports the destination type of the columns convert would use,
// so the configured row-label column is left out.
func inferTable(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	t, err := a.load(args[0])
	if err != nil {
		return err
	}
	if a.cfg.RowNames != "" {
		j, err := t.Index(a.cfg.RowNames)
		if err != nil {
			return errors.Wrapf(err, "infer %s", args[0])
		}
		if t, err = t.Drop(j); err != nil {
			return errors.Wrapf(err, "infer %s", args[0])
		}
	}
	typ, wide := matrix.InferType(t.Columns())
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "type: %s\ninteger64: %t\nrows: %d\ncols: %d\n",
		typ, wide, t.NRow(), t.NCol())

	return err
}

// writeText prints a summary line, the labels and the cells.
func writeText(w io.Writer, m *matrix.Matrix) error {
	dn := m.Dimnames()
	summary := fmt.Sprintf("%dx%d %s", m.Rows(), m.Cols(), m.Type())
	if m.IsWideInteger() {
		summary += " (integer64 cells)"
	}
	if _, err := fmt.Fprintf(w, "%s\n%v\n", summary, dn.Cols); err != nil {
		return err
	}
	if class := m.Class(); class != nil {
		if _, err := fmt.Fprintf(w, "class: %v\n", class); err != nil {
			return err
		}
	}
	if dn.Rows != nil {
		if _, err := fmt.Fprintf(w, "rows: %v\n", dn.Rows); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, m.String())

	return err
}

// writeCSV writes a header of column labels and one record per row. When
// the matrix has row labels they form an unnamed first column.
func writeCSV(w io.Writer, m *matrix.Matrix) error {
	cw := csv.NewWriter(w)
	dn := m.Dimnames()
	labelled := dn.Rows != nil

	header := dn.Cols
	if labelled {
		header = append([]string{""}, header...)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		record := make([]string, 0, m.Cols()+1)
		if labelled {
			record = append(record, dn.Rows[i])
		}
		for j := 0; j < m.Cols(); j++ {
			cell, err := m.CellString(i, j)
			if err != nil {
				return err
			}
			record = append(record, cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeGonum prints the matrix through gonum's formatter.
func writeGonum(w io.Writer, m *matrix.Matrix) error {
	d, err := m.ToGonum()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze()))

	return err
}
