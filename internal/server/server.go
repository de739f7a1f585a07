// Package server exposes the persona operations over HTTP for the web UI
// and the form-fill browser extension.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zarlcorp/zpersona/internal/persona"
	"github.com/zarlcorp/zpersona/internal/store"
)

// portScanRange is how many consecutive ports to try when the configured
// one is taken.
const portScanRange = 100

// Server wires the assembler and store behind the HTTP API.
type Server struct {
	asm   *persona.Assembler
	store *store.Store
}

// New creates a server over the given assembler and store.
func New(asm *persona.Assembler, st *store.Store) *Server {
	return &Server{asm: asm, store: st}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/generate", s.handleGenerate)
	r.Get("/api/personas", s.handleList)
	r.Get("/api/personas/{id}", s.handleGet)
	r.Delete("/api/personas/{id}", s.handleDelete)
	r.Post("/api/personas/{id}/regenerate", s.handleRegenerate)
	r.Get("/api/personas/{id}/export", s.handleExport)
	r.Post("/api/fill-form", s.handleFillForm)

	return r
}

// Start listens on addr and serves until ctx is cancelled. When addr's
// port is taken, the next ports in the scan range are tried, matching the
// original desktop-tool behavior of hunting for a free local port.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := listenWithFallback(addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	slog.Info("http server listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// listenWithFallback binds addr, scanning upward from its port when the
// first bind fails.
func listenWithFallback(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err == nil {
		return ln, nil
	}

	host, portStr, splitErr := net.SplitHostPort(addr)
	if splitErr != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	port, convErr := strconv.Atoi(portStr)
	if convErr != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	for p := port + 1; p <= port+portScanRange; p++ {
		ln, lnErr := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if lnErr == nil {
			slog.Warn("configured port taken, using fallback", "configured", port, "using", p)
			return ln, nil
		}
	}
	return nil, fmt.Errorf("listen: no free port in %d-%d", port, port+portScanRange)
}

// requestLogger logs one line per request through slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
