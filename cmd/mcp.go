package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the section to an MCP client over stdio",
	Long: `Runs an MCP server on standard input and output so an AI assistant can
launch howitworks directly, for example from its MCP server configuration:

  {"command": "howitworks", "args": ["mcp", "--content", "steps.yaml"]}

The server offers the render_how_it_works tool and the howitworks://section
and howitworks://tree resources.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return application.RunMCP(rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
