package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/view"
	"howitworks/internal/web"
)

// Format selects how a section is written.
type Format string

const (
	FormatText  Format = "text"
	FormatHTML  Format = "html"
	FormatPage  Format = "page"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatPage, FormatJSON, FormatYAML, FormatTable}
}

// ParseFormat validates s. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options control rendering of every format.
type Options struct {
	Format     Format
	Width      int
	Breakpoint layout.Breakpoint
	Dark       bool
}

// Write renders sec in opts.Format to w.
func Write(w io.Writer, sec steps.Section, opts Options) error {
	tree := layout.RenderSection(sec)
	webOpts := web.Options{Breakpoint: opts.Breakpoint, Dark: opts.Dark}

	switch opts.Format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, view.Render(tree, opts.Width, opts.Breakpoint))
		return err
	case FormatHTML:
		return web.Section(tree, webOpts).Render(w)
	case FormatPage:
		return web.Page(tree, webOpts).Render(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, tree)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// String renders sec to a string.
func String(sec steps.Section, opts Options) (string, error) {
	var b strings.Builder
	if err := Write(&b, sec, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeTable(w io.Writer, tree layout.Tree) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(tree.Header.Title)
	t.AppendHeader(table.Row{"#", "Title", "Side", "Description"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, WidthMax: 60},
	})

	for _, row := range tree.Rows {
		t.AppendRow(table.Row{row.Card.Number, row.Card.Title, row.Side.String(), row.Card.Description})
	}
	if len(tree.Rows) == 0 {
		t.AppendFooter(table.Row{"", "No steps", "", ""})
	}

	t.Render()
	return nil
}
