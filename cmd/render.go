package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"howitworks/internal/cli"
	"howitworks/internal/output"
	"howitworks/internal/tui/design"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var (
	renderFormat string
	renderWidth  int
	renderCopy   bool
	renderRemote string
)

// Swapped in tests.
var (
	terminalWidth = func() int {
		w, _, err := term.GetSize(os.Stdout.Fd())
		if err != nil || w <= 0 {
			return design.DefaultWidth
		}
		return w
	}
	clipboardWriteAll = clipboard.WriteAll
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the section once and print it",
	Long: fmt.Sprintf(`Renders the "How It Works" section and writes it to standard output.

Supported formats: %s.

The text format uses the two column timeline when the width reaches the
breakpoint and stacks the cards otherwise. The width defaults to the width
of the terminal.

With --remote the section is rendered by a running 'howitworks serve'
instance through its MCP endpoint instead of the local content.`, formatList()),
	Args: cobra.NoArgs,
	RunE: runRender,
}

func formatList() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(renderFormat)
	if err != nil {
		return err
	}
	if renderWidth < 0 {
		return fmt.Errorf("invalid width %d", renderWidth)
	}
	width := renderWidth
	if width == 0 {
		width = terminalWidth()
	}

	var buf bytes.Buffer
	if renderRemote != "" {
		err = renderRemotely(cmdContext(cmd), &buf, format, width)
	} else {
		err = renderLocally(&buf, format, width)
	}
	if err != nil {
		return err
	}

	if renderCopy {
		if err := clipboardWriteAll(ansi.Strip(buf.String())); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	_, err = io.Copy(cmd.OutOrStdout(), &buf)
	return err
}

func renderLocally(w io.Writer, format output.Format, width int) error {
	application, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Render(w, format, width)
}

func renderRemotely(ctx context.Context, w io.Writer, format output.Format, width int) error {
	c := cli.NewClient(renderRemote, rootCmd.Version)
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", renderRemote, err)
	}
	defer c.Close()

	out, err := c.Render(ctx, format, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(output.FormatText), "Output format ("+formatList()+")")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Width in columns for the text format (default: terminal width)")
	renderCmd.Flags().BoolVar(&renderCopy, "copy", false, "Also copy the rendered output to the clipboard")
	renderCmd.Flags().StringVar(&renderRemote, "remote", "", "SSE endpoint of a running server, e.g. http://localhost:8090/sse")
}
