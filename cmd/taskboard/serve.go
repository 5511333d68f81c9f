package main

import (
	"github.com/aretw0/taskboard/internal/cli"
	"github.com/spf13/cobra"
)

var serveOpts cli.ServeOptions

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the board over HTTP: a drag-and-drop page at /, the JSON API
(GET /board, POST /dispatch), Server-Sent Events at /events and the OpenAPI
document at /openapi.yaml. Stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Serve(cfg, serveOpts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveOpts.Addr, "addr", "a", "", "Address to listen on (default from config, "+`":8080"`+")")
	serveCmd.Flags().BoolVar(&serveOpts.Metrics, "metrics", false, "Expose Prometheus metrics at /metrics")
}
