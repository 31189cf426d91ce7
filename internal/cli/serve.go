package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/docsv/internal/web"
)

var serveAddrFlag string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front end for uploading documents",
	Long: `Serve starts an HTTP server with a single upload page. Posted DOCX
documents are processed with the configured operator registry and the
resulting CSV bundle is returned as a ZIP download.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (overrides the configured server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddrFlag != "" {
		cfg.Server.Addr = serveAddrFlag
	}
	return web.NewServer(cfg).ListenAndServe()
}
