package config

import (
	"fmt"

	"howitworks/internal/layout"
)

// ThemeMode selects light or dark styling. Auto leaves the decision to the host.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// AppConfig is the top-level configuration structure for howitworks.
type AppConfig struct {
	Content ContentConfig `yaml:"content"`
	Layout  LayoutConfig  `yaml:"layout"`
	Theme   ThemeConfig   `yaml:"theme"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// ContentConfig points at an optional content file overriding the built-in steps.
type ContentConfig struct {
	Path string `yaml:"path,omitempty"` // .yaml, .yml, .toml or .json; empty uses the built-in content
}

// LayoutConfig holds the wide viewport breakpoint.
type LayoutConfig struct {
	Breakpoint layout.Breakpoint `yaml:"breakpoint,omitempty"`
}

// ThemeConfig selects the presentation mode.
type ThemeConfig struct {
	Mode ThemeMode `yaml:"mode,omitempty"`
}

// ServerConfig configures the HTTP host started by `howitworks serve`.
type ServerConfig struct {
	Host       string `yaml:"host,omitempty"`       // Host to bind to (default: localhost)
	Port       int    `yaml:"port,omitempty"`       // Port to bind to (default: 8090)
	MCPEnabled *bool  `yaml:"mcpEnabled,omitempty"` // Serve the MCP SSE endpoints (default: true)
	Watch      *bool  `yaml:"watch,omitempty"`      // Reload the content file on change (default: false)
}

// MCPEnabledOrDefault reports whether MCP endpoints should be served.
func (s ServerConfig) MCPEnabledOrDefault() bool {
	return s.MCPEnabled == nil || *s.MCPEnabled
}

// WatchOrDefault reports whether the content file should be watched.
func (s ServerConfig) WatchOrDefault() bool {
	return s.Watch != nil && *s.Watch
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig configures pkg/logging.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// Validate checks values that cannot be merged into something sensible.
func (c AppConfig) Validate() error {
	switch c.Theme.Mode {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme mode %q: must be one of auto, light, dark", c.Theme.Mode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Layout.Breakpoint.Columns < 0 {
		return fmt.Errorf("invalid breakpoint columns %d", c.Layout.Breakpoint.Columns)
	}
	return nil
}

// BoolPtr is a helper for optional boolean settings.
func BoolPtr(b bool) *bool {
	return &b
}
