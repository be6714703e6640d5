package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/infinivision/datrie/dict"
	"github.com/infinivision/datrie/errmsg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index> <key>...",
		Short: "Look up keys exactly",
		Example: `  dictctl get words.idx apple
  dictctl get words.idx apple banana`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func runGet(w io.Writer, path string, keys []string) error {
	d, err := dict.Open(path, config())
	if err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	for _, k := range keys {
		v, err := d.Lookup(k)
		switch {
		case errors.Is(err, errmsg.NotExist):
			fmt.Fprintf(w, "%s\t(not found)\n", k)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "%s\t%s\n", k, v)
		}
	}
	return nil
}
