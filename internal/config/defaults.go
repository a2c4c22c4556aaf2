package config

import (
	"howitworks/internal/layout"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8090
)

// GetDefaultConfig returns the built-in configuration: built-in content,
// md/80 column breakpoint, automatic theme and a local server with MCP enabled.
func GetDefaultConfig() AppConfig {
	return AppConfig{
		Layout: LayoutConfig{
			Breakpoint: layout.DefaultBreakpoint(),
		},
		Theme: ThemeConfig{
			Mode: ThemeAuto,
		},
		Server: ServerConfig{
			Host:       DefaultHost,
			Port:       DefaultPort,
			MCPEnabled: BoolPtr(true),
			Watch:      BoolPtr(false),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
