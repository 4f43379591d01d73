// SPDX-License-Identifier: MIT

// Command asmatrix loads a table from a YAML fixture, an Arrow IPC file or
// stream, or a Parquet file and prints it as a homogeneous matrix.
//
//	asmatrix convert data.parquet --rownames id --format csv
//	asmatrix infer data.arrow
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "convert file",
		Short: "Convert a table into a matrix and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  convertTable}
	cmd.Flags().String("rownames", "", "column providing the row labels")
	cmd.Flags().String("format", formatText, "output format: text, csv or gonum")
	cmd.Flags().Bool("retain-integer64", false, "keep the integer64 class on the result")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "infer file",
		Short: "Print the matrix type a table would convert to",
		Args:  cobra.ExactArgs(1),
		RunE:  inferTable}
	cmd.Flags().String("rownames", "", "column providing the row labels (left out of the inference)")
	root.AddCommand(cmd)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "asmatrix",
		Short:         "Convert columnar tables into homogeneous matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")
	addCommands(root)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
