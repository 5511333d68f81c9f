package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/taskboard/internal/config"
	"github.com/aretw0/taskboard/pkg/adapters/mcp"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/observability"

	httpAdapter "github.com/aretw0/taskboard/pkg/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	// Addr overrides cfg.Addr when set.
	Addr    string
	Metrics bool
}

// Serve exposes the board over HTTP until SIGINT or SIGTERM.
func Serve(cfg *config.Config, opts ServeOptions) error {
	logger, err := NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	var hooks []domain.LifecycleHooks
	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	store, err := BuildStore(sigCtx, cfg, logger, hooks...)
	if err != nil {
		return err
	}

	srvOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if metrics != nil {
		metrics.Observe(store.GetState())
		srvOpts = append(srvOpts, httpAdapter.WithMetrics(metrics.Handler()))
	}
	handler := httpAdapter.NewServer(store, srvOpts...)
	defer handler.Close()

	addr := cfg.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serveUntilDone(sigCtx, srv, logger)
}

// serveUntilDone runs srv until it fails or ctx ends, then shuts it down.
// Request contexts derive from ctx so open event streams end with it.
func serveUntilDone(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	srv.BaseContext = func(net.Listener) context.Context { return ctx }

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting taskboard server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return srv.Close()
		}
		logger.Info("Taskboard server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the Model Context Protocol server on stdio, or over SSE when sseAddr is set.
// Logs always go to Stderr so they never corrupt the JSON-RPC stream.
func ServeMCP(cfg *config.Config, sseAddr string) error {
	logger, err := NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	store, err := BuildStore(sigCtx, cfg, logger)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(store, logger)

	if sseAddr == "" {
		logger.Info("Starting taskboard MCP server (stdio)")
		return srv.ServeStdio()
	}

	if err := srv.ServeSSE(sigCtx, sseAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("MCP server stopped gracefully")
	return nil
}
