// Package cli implements the docsv command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/export"
	"github.com/tsawler/docsv/internal/config"
)

var (
	cfgFile string
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsv",
	Short: "Extract tables from DOCX documents and export them as CSV bundles",
	Long: `docsv reads the tables embedded in a DOCX document, normalizes their
cell text, and writes them back out as CSV files - either a plain dump or
one file set per configured operator, optionally bundled into a ZIP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docsv.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}

// loadConfig loads the application configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.NewLoader(cfgFile).Load()
}

// userMessage maps pipeline errors to the messages shown to users; anything
// unrecognized passes through unchanged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, docx.ErrNotFound):
		return "file not found"
	case errors.Is(err, docx.ErrInvalidFormat):
		return "the file is not a valid DOCX document"
	case errors.Is(err, export.ErrNoTables):
		return "the document contains no tables with data"
	case errors.Is(err, export.ErrInvalidTarget):
		return "the destination is a file: choose a directory or use --zip"
	default:
		return err.Error()
	}
}
