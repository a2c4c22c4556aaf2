package cmd

import (
	"fmt"

	"howitworks/internal/app"

	"github.com/spf13/cobra"
)

var (
	serveHost  string
	servePort  int
	serveNoMCP bool
	serveWatch bool
)

// serveCmd serves the section over HTTP and, unless disabled, over MCP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the section over HTTP and MCP",
	Long: `Starts an HTTP server exposing the section:

  GET /          complete HTML page (?theme=dark|light)
  GET /section   the section fragment only
  GET /api/tree  the layout tree as JSON (?format=yaml for YAML)
  GET /healthz   liveness check

Unless --no-mcp is given, the same server exposes an MCP endpoint over
SSE at /sse with a render_how_it_works tool and section resources. Other
commands can use it with 'howitworks render --remote http://host:port/sse'.

Configuration:
  howitworks loads configuration from .howitworks/config.yaml in the current
  directory or ~/.config/howitworks/config.yaml. Flags override both.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.RunServer(cmdContext(cmd), app.ServeOptions{
		Host:    serveHost,
		Port:    servePort,
		NoMCP:   serveNoMCP,
		Watch:   serveWatch,
		Version: rootCmd.Version,
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config: localhost)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to bind to (default from config: 8090)")
	serveCmd.Flags().BoolVar(&serveNoMCP, "no-mcp", false, "Do not expose the MCP endpoints")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the content file when it changes")
}
