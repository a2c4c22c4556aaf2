package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"howitworks/internal/config"
	"howitworks/internal/content"
	"howitworks/internal/mcpserver"
	"howitworks/internal/server"
	"howitworks/internal/steps"
	"howitworks/internal/tui/controller"
	"howitworks/internal/tui/design"
	"howitworks/pkg/logging"

	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ServeOptions override the server section of the configuration.
type ServeOptions struct {
	Host    string
	Port    int
	NoMCP   bool
	Watch   bool
	Version string
}

// serverConfig merges opts over the configured server settings.
func (a *Application) serverConfig(opts ServeOptions) server.Config {
	s := a.config.AppConfig.Server
	cfg := server.Config{
		Host:       s.Host,
		Port:       s.Port,
		MCPEnabled: s.MCPEnabledOrDefault() && !opts.NoMCP,
		Watch:      s.WatchOrDefault() || opts.Watch,
		Breakpoint: a.Breakpoint(),
		Dark:       a.Dark(),
		Version:    opts.Version,
	}
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port != 0 {
		cfg.Port = opts.Port
	}
	return cfg
}

// RunServer serves the section until ctx is done or an interrupt arrives.
func (a *Application) RunServer(ctx context.Context, opts ServeOptions) error {
	// Server lifecycle messages are always shown.
	if a.config.AppConfig.Logging.Level == "" && !a.config.Debug {
		logging.InitForCLI(logging.LevelInfo, os.Stderr)
	}

	srv := server.New(a.serverConfig(opts), a.store)
	if err := srv.Start(ctx); err != nil {
		logging.Error("CLI", err, "Failed to start server")
		return err
	}

	logging.Info("CLI", "Press Ctrl+C to stop.")

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logging.Info("CLI", "Shutting down")
	return srv.Stop(context.Background())
}

// RunViewer runs the interactive terminal viewer until the user quits.
func (a *Application) RunViewer(ctx context.Context, watch bool) error {
	switch a.config.AppConfig.Theme.Mode {
	case config.ThemeDark:
		design.Initialize(true)
	case config.ThemeLight:
		design.Initialize(false)
	}

	level := logging.ParseLevel(a.config.AppConfig.Logging.Level)
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	var reloads chan steps.Section
	if watch && a.store.Path() != "" {
		reloads = make(chan steps.Section, 1)
		a.store.OnReload(func(sec steps.Section) {
			// Only the newest section matters; drop one the viewer has not picked up yet.
			select {
			case <-reloads:
			default:
			}
			select {
			case reloads <- sec:
			default:
			}
		})

		w, err := content.Watch(ctx, a.store)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	p := controller.NewProgram(a.store, a.Breakpoint(), logChan, reloads)
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}

// RunMCP serves the MCP tools and resources over stdin and stdout.
func (a *Application) RunMCP(version string) error {
	srv := mcpserver.New(a.store, version, mcpserver.Options{
		Breakpoint: a.Breakpoint(),
		Dark:       a.Dark(),
	})
	logging.Debug("CLI", "Serving MCP over stdio")
	return mcpsrv.ServeStdio(srv)
}
