package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"howitworks/internal/layout"
	"howitworks/internal/output"
	"howitworks/internal/steps"
	"howitworks/pkg/logging"
)

const (
	ServerName = "howitworks"

	ToolRender         = "render_how_it_works"
	ResourceSectionURI = "howitworks://section"
	ResourceTreeURI    = "howitworks://tree"
)

// toolFormats are the formats the render tool accepts.
var toolFormats = []string{string(output.FormatText), string(output.FormatHTML), string(output.FormatJSON)}

// Source supplies the current section.
type Source interface {
	Section() steps.Section
}

// Options control the renderings served over MCP.
type Options struct {
	Breakpoint layout.Breakpoint
	Dark       bool
}

// New creates an MCP server exposing the render tool and the section resources.
func New(src Source, version string, opts Options) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	h := &handlers{src: src, opts: opts}

	s.AddTool(mcp.NewTool(ToolRender,
		mcp.WithDescription("Render the How It Works section as terminal text, an HTML fragment or the JSON layout tree"),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum(toolFormats...),
			mcp.DefaultString(string(output.FormatText)),
		),
		mcp.WithNumber("width",
			mcp.Description("Terminal width in columns for the text format; 0 uses the default width"),
			mcp.Min(0),
		),
	), h.handleRender)

	s.AddResource(mcp.NewResource(ResourceSectionURI, "How It Works section",
		mcp.WithResourceDescription("The section as an HTML fragment"),
		mcp.WithMIMEType("text/html"),
	), h.handleSectionResource)

	s.AddResource(mcp.NewResource(ResourceTreeURI, "How It Works layout tree",
		mcp.WithResourceDescription("The structural layout tree as JSON"),
		mcp.WithMIMEType("application/json"),
	), h.handleTreeResource)

	return s
}

type handlers struct {
	src  Source
	opts Options
}

func (h *handlers) render(format output.Format, width int) (string, error) {
	return output.String(h.src.Section(), output.Options{
		Format:     format,
		Width:      width,
		Breakpoint: h.opts.Breakpoint,
		Dark:       h.opts.Dark,
	})
}

func (h *handlers) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawFormat := request.GetString("format", string(output.FormatText))
	format, err := output.ParseFormat(rawFormat)
	if err != nil || !isToolFormat(format) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q, expected one of %s", rawFormat, strings.Join(toolFormats, ", "))), nil
	}

	width := request.GetInt("width", 0)
	if width < 0 {
		return mcp.NewToolResultError("width must not be negative"), nil
	}

	text, err := h.render(format, width)
	if err != nil {
		logging.Error("MCP", err, "Failed to render section as %s", format)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render section: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (h *handlers) handleSectionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := h.render(output.FormatHTML, 0)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: ResourceSectionURI, MIMEType: "text/html", Text: text},
	}, nil
}

func (h *handlers) handleTreeResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := h.render(output.FormatJSON, 0)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: ResourceTreeURI, MIMEType: "application/json", Text: text},
	}, nil
}

func isToolFormat(f output.Format) bool {
	for _, known := range toolFormats {
		if string(f) == known {
			return true
		}
	}
	return false
}
