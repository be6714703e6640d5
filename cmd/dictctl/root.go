package main

import (
	"fmt"
	"io"
	"os"

	"github.com/infinivision/datrie/dict"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet bool
)

var rootCmd = &cobra.Command{
	Use:   "dictctl",
	Short: "Build and query double-array dictionaries",
	Long: `dictctl builds immutable double-array dictionaries from key/value
text files and answers exact and common-prefix lookups against them.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress library log output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func config() dict.Config {
	cfg := dict.DefaultConfig()
	if quiet {
		cfg.LogWriter = io.Discard
	}
	return cfg
}
