package cmd

import (
	"os"

	"howitworks/internal/app"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command that loads content.
var (
	configPath     string
	contentPath    string
	themeMode      string
	breakpointCols int
	debugLogging   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "howitworks",
	Short: "Render a \"How It Works\" step timeline",
	Long: `howitworks renders an ordered list of steps as an alternating
timeline: a centered header, one card per step on alternating sides of a
vertical connector, and a dot marking each step.

The section can be rendered to the terminal, written as HTML, browsed in an
interactive viewer, or served over HTTP and MCP.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable content files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "howitworks version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication builds the application from the persistent flags.
func newApplication() (*app.Application, error) {
	cfg := app.NewConfig(debugLogging, configPath)
	cfg.ContentPath = contentPath
	cfg.Theme = themeMode
	cfg.Breakpoint = breakpointCols
	return app.NewApplication(cfg)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file (default: layered ~/.config/howitworks and ./.howitworks)")
	flags.StringVar(&contentPath, "content", "", "Content file with the steps (.yaml, .toml or .json)")
	flags.StringVar(&themeMode, "theme", "", "Theme mode (auto, light, dark)")
	flags.IntVar(&breakpointCols, "breakpoint", 0, "Minimum width in columns for the two column layout")
	flags.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
}
