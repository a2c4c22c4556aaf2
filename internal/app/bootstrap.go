package app

import (
	"fmt"
	"io"
	"os"

	"howitworks/internal/config"
	"howitworks/internal/content"
	"howitworks/internal/layout"
	"howitworks/internal/output"
	"howitworks/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application bundles the loaded configuration and content for one command.
type Application struct {
	config *Config
	store  *content.Store
}

// NewApplication loads configuration and content. Logging goes to stderr so
// rendered output on stdout stays clean.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, os.Stderr)
}

func newApplication(cfg *Config, logOut io.Writer) (*Application, error) {
	level := logging.LevelWarn
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, logOut)

	var appCfg config.AppConfig
	var err error
	if cfg.ConfigPath != "" {
		appCfg, err = config.LoadConfigFile(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		appCfg, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration using layered approach")
	}

	cfg.apply(&appCfg)
	if err := appCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.AppConfig = &appCfg

	// The configured level only takes effect once the configuration is known.
	if !cfg.Debug && appCfg.Logging.Level != "" {
		logging.InitForCLI(logging.ParseLevel(appCfg.Logging.Level), logOut)
	}

	store, err := content.NewStore(appCfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	return &Application{config: cfg, store: store}, nil
}

// Settings returns the merged configuration.
func (a *Application) Settings() config.AppConfig {
	return *a.config.AppConfig
}

// Store returns the content store.
func (a *Application) Store() *content.Store {
	return a.store
}

// Breakpoint returns the configured breakpoint.
func (a *Application) Breakpoint() layout.Breakpoint {
	return a.config.AppConfig.Layout.Breakpoint
}

// Dark reports whether dark styling was requested explicitly. Auto is
// treated as light for HTML and left to terminal detection in the viewer.
func (a *Application) Dark() bool {
	return a.config.AppConfig.Theme.Mode == config.ThemeDark
}

// Render writes the current section in format to w.
func (a *Application) Render(w io.Writer, format output.Format, width int) error {
	return output.Write(w, a.store.Section(), output.Options{
		Format:     format,
		Width:      width,
		Breakpoint: a.Breakpoint(),
		Dark:       a.Dark(),
	})
}
