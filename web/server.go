// Package web mirrors the portfolio over HTTP: the same command registry
// as the terminal UI behind a JSON API, an embedded HTML terminal page,
// and a websocket endpoint that runs the snake engine for browser clients.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gbrlmtts/terminal-card-shell/shell"
)

// Server holds shared state for the HTTP handlers.
type Server struct {
	logger *slog.Logger

	mu sync.Mutex // guards sh; the shell keeps per-process history
	sh *shell.Shell
}

// NewServer creates a Server backed by a fresh shell.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{logger: logger, sh: shell.New()}
}

// RegisterRoutes sets up all routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/commands", s.handleCommands)
	mux.HandleFunc("/api/run", s.handleRun)
	mux.HandleFunc("/api/links", s.handleLinks)
	mux.HandleFunc("/ws/snake", s.handleSnakeWS)
	mux.HandleFunc("/healthz", s.handleHealthz)
}

func withCORS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// CommandInfo describes one registry entry for the API.
type CommandInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Summary string   `json:"summary"`
}

// RunRequest is the POST body for /api/run.
type RunRequest struct {
	Cmd string `json:"cmd"`
}

// RunResponse is the result of executing one command line.
type RunResponse struct {
	Output string `json:"output"`
	Action string `json:"action"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	cmds := s.sh.Commands()
	s.mu.Unlock()

	out := make([]CommandInfo, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, CommandInfo{Name: c.Name, Aliases: c.Aliases, Summary: c.Summary})
	}
	writeJSON(w, out)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}

	var line string
	switch r.Method {
	case http.MethodGet:
		line = r.URL.Query().Get("cmd")
	case http.MethodPost:
		var req RunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		line = req.Cmd
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	res := s.sh.Execute(line)
	s.mu.Unlock()

	s.logger.Info("command executed", "cmd", line, "action", res.Action.String())
	writeJSON(w, RunResponse{Output: res.Output, Action: res.Action.String()})
}

func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, shell.Links)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}
