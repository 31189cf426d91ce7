package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/export"
)

var (
	exportOutputFlag string
	exportZipFlag    bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <input.docx>",
	Short: "Export tables as one CSV file set per configured operator",
	Long: `Export extracts the tables of the input document and writes one CSV file
set per operator, laid out as Operator_<key>/<basename>_<n>.csv.

The operator registry comes from the configuration file (docsv.yaml); by
default it holds the operators A and B. With --zip the same layout is
bundled into a single ZIP archive instead of a directory tree.

Examples:
  # Directory tree under ./operator_results
  docsv export report.docx

  # Single archive; the .zip suffix is appended when missing
  docsv export report.docx --output results --zip
`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "operator_results", "Destination directory, or archive path with --zip")
	exportCmd.Flags().BoolVar(&exportZipFlag, "zip", false, "Bundle the results into a single ZIP archive")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tables, err := docx.ExtractTables(args[0])
	if err != nil {
		return err
	}

	operators := cfg.ExportOperators()

	if exportZipFlag {
		archivePath, err := export.ToArchive(tables, operators, exportOutputFlag)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", archivePath)
		return nil
	}

	written, err := export.ToDirectory(tables, operators, exportOutputFlag)
	if err != nil {
		return err
	}

	if !quiet {
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d CSV file(s) for %d operator(s)\n", len(written), len(operators))
	return nil
}
