// Package server exposes a list document over HTTP for remote clients.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/store"
)

// maxBody caps a POSTed document.
const maxBody = 8 << 20

// Config holds server configuration.
type Config struct {
	// Addr to listen on (default ":8000"). Use ":0" for a random port.
	Addr string

	// Logger for server activity (default: stderr logger)
	Logger *log.Logger
}

func DefaultConfig() *Config {
	return &Config{
		Addr:   ":8000",
		Logger: log.Default(),
	}
}

// Server serves GET and POST /items on top of a store.Gateway.
type Server struct {
	addr     string
	docs     store.Gateway
	logger   *log.Logger
	listener net.Listener
	server   *http.Server
	errc     chan error
}

func New(docs store.Gateway, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Addr == "" {
		config.Addr = ":8000"
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Server{
		addr:   config.Addr,
		docs:   docs,
		logger: config.Logger,
	}
}

// Handler returns the routes, for embedding and tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/items", s.handleItems)
	mux.HandleFunc("/health", s.handleHealth)
	return withCORS(mux)
}

// Start listens and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.errc = make(chan error, 1)
	go func() {
		defer close(s.errc)
		s.logger.Printf("serving items on %s", ln.Addr())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("server error: %v", err)
			s.errc <- fmt.Errorf("serve: %w", err)
		}
	}()
	return nil
}

// Err delivers the error that stopped serving, if any, and is closed once
// the serve loop has returned. It is nil before Start.
func (s *Server) Err() <-chan error {
	return s.errc
}

// Stop shuts the server down, waiting for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Println("stopping server")
	return s.server.Shutdown(ctx)
}

// Addr is the bound address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.docs.FetchAll(r.Context())
		if err != nil {
			s.logger.Printf("GET /items: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "read failed"})
			return
		}
		if items == nil {
			items = []model.Item{}
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read body"})
			return
		}
		var items []model.Item
		if err := json.Unmarshal(body, &items); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be a JSON array of items"})
			return
		}
		if err := s.docs.ReplaceAll(r.Context(), items); err != nil {
			s.logger.Printf("POST /items: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "write failed"})
			return
		}
		s.logger.Printf("stored %d items", len(items))
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	default:
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS allows any origin, answering preflight requests directly.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
