package main

import (
	"fmt"
	"io"

	"github.com/infinivision/datrie/dict"
	"github.com/spf13/cobra"
)

var (
	prefixBegin int
)

func init() {
	cmd := newPrefixCmd()
	cmd.Flags().IntVar(&prefixBegin, "begin", 0, "Byte offset in the query to start matching at")
	rootCmd.AddCommand(cmd)
}

func newPrefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <index> <query>",
		Short: "List keys that are prefixes of a query",
		Long: `The prefix command prints every registered key that is a prefix of the
query (from --begin on), shortest first, as "begin end key value".

Example:
  dictctl prefix words.idx applesauce
  dictctl prefix words.idx "big applesauce" --begin 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefix(cmd.OutOrStdout(), args[0], args[1], prefixBegin)
		},
	}
}

func runPrefix(w io.Writer, path, query string, begin int) error {
	d, err := dict.Open(path, config())
	if err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	var ferr error
	d.Prefix(query, begin, func(b, e, id int) {
		if ferr != nil {
			return
		}
		v, err := d.ValueOf(id)
		if err != nil {
			ferr = err
			return
		}
		fmt.Fprintf(w, "%v\t%v\t%s\t%s\n", b, e, query[b:e], v)
	})
	return ferr
}
