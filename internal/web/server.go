package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"termfolio/internal/files"
	"termfolio/internal/model"
)

//go:embed static/*
var staticFS embed.FS

// Options configures a Server.
type Options struct {
	Welcome string // Command run when a websocket session starts
}

// Server serves the file API, the websocket terminal and the browser client.
type Server struct {
	files    files.Service
	sessions SessionFactory
	opts     Options
	mux      *http.ServeMux
}

// NewServer creates a server. A nil factory disables the websocket endpoint.
func NewServer(svc files.Service, sessions SessionFactory, opts Options) *Server {
	s := &Server{
		files:    svc,
		sessions: sessions,
		opts:     opts,
		mux:      http.NewServeMux(),
	}

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	s.mux.HandleFunc("GET "+files.ListRoute, s.handleList)
	s.mux.HandleFunc("GET "+files.ReadRoute, s.handleRead)
	if sessions != nil {
		s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	slog.Debug("HTTP request",
		"method", r.Method,
		"path", r.URL.Path,
		"duration", time.Since(start),
	)
}

// ListenAndServe runs the server on addr until ctx is done.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Starting termfolio web server at http://localhost%s\n", displayAddr(addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return addr
}

func requestPath(r *http.Request, route string) []string {
	return model.SplitPath(strings.TrimPrefix(r.URL.Path, route))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.files.List(r.Context(), requestPath(r, files.ListRoute))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nodes)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	contents, err := s.files.Read(r.Context(), requestPath(r, files.ReadRoute))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, contents)
}

func writeData(w http.ResponseWriter, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files.Response{Data: raw})
}

// writeError maps service errors to the status codes of the file API.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, files.ErrNoSuchPath):
		status, msg = http.StatusNotFound, files.ErrNoSuchPath.Error()
	case errors.Is(err, files.ErrNotADirectory):
		msg = files.ErrNotADirectory.Error()
	case errors.Is(err, files.ErrNotAFile):
		msg = files.ErrNotAFile.Error()
	default:
		slog.Error("File API failure", "error", err)
		msg = "internal error"
	}
	raw, _ := json.Marshal(msg)
	writeJSON(w, status, files.Response{Error: true, Data: raw})
}

func writeJSON(w http.ResponseWriter, status int, resp files.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("Could not write response", "error", err)
	}
}
