package cli

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/export"
)

var (
	extractOutputFlag   string
	extractBasenameFlag string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <input.docx>",
	Short: "Extract tables from a DOCX file into numbered CSV files",
	Long: `Extract reads every meaningful table from the input document and writes
each one to <output>/<basename>_<n>.csv, numbered from 1 in document order.

Tables whose cells are all empty are skipped.

Examples:
  # Write table_1.csv, table_2.csv, ... into ./tables
  docsv extract report.docx

  # Custom destination and file basename
  docsv extract report.docx --output out --basename annex
`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutputFlag, "output", "o", "tables", "Directory where CSV files will be written")
	extractCmd.Flags().StringVarP(&extractBasenameFlag, "basename", "b", "table", "Base name for the exported CSV files")
}

func runExtract(cmd *cobra.Command, args []string) error {
	tables, err := docx.ExtractTables(args[0])
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tables with data found in", args[0])
		return nil
	}

	bar := newProgressBar(len(tables), "writing CSV files")
	for i, table := range tables {
		destination := filepath.Join(extractOutputFlag, fmt.Sprintf("%s_%d.csv", extractBasenameFlag, i+1))
		if _, err := export.WriteTableCSV(table, destination); err != nil {
			return err
		}
		bar.Add(1)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d CSV file(s) to %s\n", len(tables), extractOutputFlag)
	}
	return nil
}

// newProgressBar returns a progress bar, silenced under --quiet.
func newProgressBar(n int, description string) *progressbar.ProgressBar {
	if quiet {
		return progressbar.DefaultSilent(int64(n), description)
	}
	return progressbar.Default(int64(n), description)
}
