package server

import (
	"encoding/json"
	"net/http"

	"howitworks/internal/output"
	"howitworks/pkg/logging"
)

// darkFor resolves the page theme. ?theme=dark|light overrides the configured default.
func (s *Server) darkFor(r *http.Request) bool {
	switch r.URL.Query().Get("theme") {
	case "dark":
		return true
	case "light":
		return false
	default:
		return s.config.Dark
	}
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, format output.Format, contentType string) {
	w.Header().Set("Content-Type", contentType)
	err := output.Write(w, s.store.Section(), output.Options{
		Format:     format,
		Breakpoint: s.config.Breakpoint,
		Dark:       s.darkFor(r),
	})
	if err != nil {
		// Headers are gone by now; the client sees a truncated body.
		logging.Error(subsystem, err, "Failed to write %s response for %s", format, r.URL.Path)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, output.FormatPage, "text/html; charset=utf-8")
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, output.FormatHTML, "text/html; charset=utf-8")
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "", "json":
		s.write(w, r, output.FormatJSON, "application/json")
	case "yaml":
		s.write(w, r, output.FormatYAML, "application/yaml")
	default:
		http.Error(w, "unsupported format, expected json or yaml", http.StatusBadRequest)
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
