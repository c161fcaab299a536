// ABOUTME: HTTP server for the metrics endpoint with slowloris-safe timeouts
// ABOUTME: ServeMetrics runs until its context ends, then shuts down gracefully

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mauromedda/coachmark-go/internal/log"
)

// ShutdownTimeout bounds the graceful shutdown after the context ends.
const ShutdownTimeout = 2 * time.Second

// NewServer creates an HTTP server with security configurations
func NewServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

// ServeMetrics serves h at /metrics on addr until ctx ends. A server closed
// by ctx returns nil.
func ServeMetrics(ctx context.Context, addr string, h http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := NewServer(mux, addr)

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})
	defer stop()

	log.Info("metrics: serving on http://%s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
