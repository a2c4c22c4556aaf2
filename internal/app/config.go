package app

import (
	"howitworks/internal/config"
)

// Config holds the command line settings of one invocation. Non-zero values
// override what was loaded from the configuration files.
type Config struct {
	// Debug forces debug logging regardless of logging.level.
	Debug bool

	// ConfigPath loads a single configuration file instead of the layered lookup.
	ConfigPath string

	// Overrides
	ContentPath string
	Theme       string
	Breakpoint  int

	// AppConfig is the merged configuration, set by NewApplication.
	AppConfig *config.AppConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// apply copies the command line overrides onto cfg.
func (c *Config) apply(cfg *config.AppConfig) {
	if c.ContentPath != "" {
		cfg.Content.Path = c.ContentPath
	}
	if c.Theme != "" {
		cfg.Theme.Mode = config.ThemeMode(c.Theme)
	}
	if c.Breakpoint != 0 {
		cfg.Layout.Breakpoint.Columns = c.Breakpoint
	}
	if c.Debug {
		cfg.Logging.Level = "debug"
	}
}
