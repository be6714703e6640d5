package main

import (
	"fmt"
	"io"
	"os"

	"github.com/infinivision/datrie/dict"
	"github.com/spf13/cobra"
)

var (
	buildSorted    bool
	buildEncoding  string
	buildSeparator string
)

func init() {
	cmd := newBuildCmd()
	cmd.Flags().BoolVar(&buildSorted, "sorted", false, "Input is already sorted by key")
	cmd.Flags().StringVar(&buildEncoding, "encoding", "utf-8", "Input encoding (utf-8, utf-16, utf-16le, utf-16be, shift_jis, euc-jp, iso-2022-jp, windows-1252)")
	cmd.Flags().StringVar(&buildSeparator, "separator", "\t", "Key/value separator")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <input> <output>",
		Short: "Build a dictionary file from key/value lines",
		Long: `The build command reads one key/value pair per line and writes an
index file. Duplicate keys keep their first value.

Example:
  dictctl build words.tsv words.idx
  dictctl build words.sjis.tsv words.idx --encoding shift_jis`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runBuild(w io.Writer, in, out string) error {
	fp, err := os.Open(in)
	if err != nil {
		return err
	}
	defer fp.Close()
	cfg := config()
	cfg.Sorted = buildSorted
	cfg.Encoding = buildEncoding
	cfg.Separator = buildSeparator
	d, err := dict.Load(fp, cfg)
	if err != nil {
		return fmt.Errorf("failed to build '%s': %w", in, err)
	}
	if err := d.Save(out); err != nil {
		return fmt.Errorf("failed to write '%s': %w", out, err)
	}
	fmt.Fprintf(w, "%v keys written to %s\n", d.Len(), out)
	return nil
}
