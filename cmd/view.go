package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the section in an interactive terminal viewer",
	Long: `Opens the section in a full screen terminal viewer. The layout follows
the terminal width and switches between two columns and a stacked list as
the window is resized.

Keys:
  ↑/↓ pgup/pgdn  scroll (k/j b/f also work)
  y              copy the section as plain text
  r              reload the content file
  ?              toggle help
  q              quit

With --watch the content file is reloaded whenever it changes on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return application.RunViewer(cmdContext(cmd), viewWatch)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "Reload the content file when it changes")
}
