package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	mcpsrv "github.com/mark3labs/mcp-go/server"

	"howitworks/internal/content"
	"howitworks/internal/layout"
	"howitworks/internal/mcpserver"
	"howitworks/pkg/logging"
)

const subsystem = "Server"

const shutdownTimeout = 5 * time.Second

var (
	ErrAlreadyStarted = errors.New("server already started")
	ErrNotStarted     = errors.New("server not started")
)

// Config holds the HTTP host settings.
type Config struct {
	Host       string
	Port       int
	MCPEnabled bool
	Watch      bool
	Breakpoint layout.Breakpoint
	// Dark selects the dark page theme unless a request asks otherwise.
	Dark    bool
	Version string
}

// Server serves the section over HTTP and, when enabled, MCP over SSE.
type Server struct {
	config Config
	store  *content.Store

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	watcher    *content.Watcher
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a server for store. Nothing listens until Start.
func New(cfg Config, store *content.Store) *Server {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	return &Server{config: cfg, store: store}
}

// Start listens on the configured address and serves in the background.
// Port 0 picks a free port; Addr reports the one chosen.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return ErrAlreadyStarted
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	serveCtx, cancel := context.WithCancel(ctx)

	if s.config.Watch && s.store.Path() != "" {
		w, err := content.Watch(serveCtx, s.store)
		if err != nil {
			cancel()
			listener.Close()
			return fmt.Errorf("watch content: %w", err)
		}
		s.watcher = w
	}

	baseURL := "http://" + listener.Addr().String()
	s.httpServer = &http.Server{
		Handler:           s.routes(baseURL),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return serveCtx
		},
	}
	s.listener = listener
	s.cancelFunc = cancel

	httpServer := s.httpServer
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(subsystem, err, "HTTP server error")
		}
	}()

	logging.Info(subsystem, "Serving How It Works on %s (mcp=%t, watch=%t)", baseURL, s.config.MCPEnabled, s.watcher != nil)
	return nil
}

// Addr returns the address the server listens on, empty when stopped.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, waiting up to five seconds for requests to finish.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.httpServer == nil {
		s.mu.Unlock()
		return ErrNotStarted
	}

	logging.Info(subsystem, "Stopping HTTP server")

	httpServer := s.httpServer
	watcher := s.watcher
	cancelFunc := s.cancelFunc
	s.httpServer = nil
	s.listener = nil
	s.watcher = nil
	s.cancelFunc = nil
	s.mu.Unlock()

	// Cancelling the base context ends long lived SSE streams.
	cancelFunc()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown HTTP server: %w", err))
	}
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close watcher: %w", err))
		}
	}

	s.wg.Wait()
	return errors.Join(errs...)
}

// routes builds the handler. baseURL is advertised to SSE clients.
func (s *Server) routes(baseURL string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /section", s.handleSection)
	mux.HandleFunc("GET /api/tree", s.handleTree)
	mux.HandleFunc("GET /healthz", handleHealthz)

	if s.config.MCPEnabled {
		mcpServer := mcpserver.New(s.store, s.config.Version, mcpserver.Options{
			Breakpoint: s.config.Breakpoint,
			Dark:       s.config.Dark,
		})
		sse := mcpsrv.NewSSEServer(mcpServer,
			mcpsrv.WithBaseURL(baseURL),
			mcpsrv.WithSSEEndpoint("/sse"),
			mcpsrv.WithMessageEndpoint("/message"),
			mcpsrv.WithKeepAlive(true),
			mcpsrv.WithKeepAliveInterval(30*time.Second),
		)
		mux.Handle("/sse", sse)
		mux.Handle("/message", sse)
	}

	return logRequests(mux)
}
