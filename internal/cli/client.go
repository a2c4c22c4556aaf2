package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"howitworks/internal/layout"
	"howitworks/internal/mcpserver"
	"howitworks/internal/output"
)

// DefaultTimeout bounds every request made by the client.
const DefaultTimeout = 30 * time.Second

// ErrNotConnected is returned when a call is made before Connect.
var ErrNotConnected = errors.New("client not connected")

// Client renders the section through a running server's MCP endpoint.
type Client struct {
	endpoint string
	client   client.MCPClient
	timeout  time.Duration
	version  string
}

// EndpointFor returns the SSE endpoint of a server listening on host:port.
func EndpointFor(host string, port int) string {
	return fmt.Sprintf("http://%s:%d/sse", host, port)
}

// NewClient creates a client for the given SSE endpoint.
func NewClient(endpoint, version string) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  DefaultTimeout,
		version:  version,
	}
}

// Endpoint returns the SSE endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Connect establishes the SSE transport and performs the MCP handshake.
func (c *Client) Connect(ctx context.Context) error {
	sseClient, err := client.NewSSEMCPClient(c.endpoint)
	if err != nil {
		return fmt.Errorf("failed to create SSE client: %w", err)
	}

	if err := sseClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start SSE client: %w", err)
	}
	c.client = sseClient

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}

	return nil
}

// CallTool executes a tool and returns the result
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns its first text content.
func (c *Client) CallToolSimple(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	var texts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			texts = append(texts, textContent.Text)
		}
	}

	if result.IsError {
		return "", fmt.Errorf("tool error: %s", strings.Join(texts, "; "))
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// Render asks the server for the section in format. width is only used by
// the text format; zero leaves the choice to the server.
func (c *Client) Render(ctx context.Context, format output.Format, width int) (string, error) {
	args := map[string]any{"format": string(format)}
	if width > 0 {
		args["width"] = width
	}
	return c.CallToolSimple(ctx, mcpserver.ToolRender, args)
}

// Tree fetches the layout tree from the server.
func (c *Client) Tree(ctx context.Context) (layout.Tree, error) {
	text, err := c.Render(ctx, output.FormatJSON, 0)
	if err != nil {
		return layout.Tree{}, err
	}
	var tree layout.Tree
	if err := json.Unmarshal([]byte(text), &tree); err != nil {
		return layout.Tree{}, fmt.Errorf("failed to decode layout tree: %w", err)
	}
	return tree, nil
}

// Close closes the connection
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// initialize performs the MCP protocol handshake
func (c *Client) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "howitworks-cli",
		Version: c.version,
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}
