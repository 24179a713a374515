// Package server runs the HTTP server and background event consumers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/reelshelf/internal/events"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// DefaultPruneInterval is how often old events are removed.
const DefaultPruneInterval = time.Hour

// Config for the runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// Listener overrides Addr when set.
	Listener net.Listener
	// Retention is how long recorded events are kept; 0 keeps them all.
	Retention     time.Duration
	PruneInterval time.Duration
}

// Runner manages the server components.
type Runner struct {
	config  Config
	handler http.Handler
	bus     *events.Bus
	log     *events.EventLog
	logger  *slog.Logger
}

// NewRunner creates a new runner. bus and log may be nil, in which case the
// event consumer or the pruner is not started.
func NewRunner(cfg Config, handler http.Handler, bus *events.Bus, log *events.EventLog, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.PruneInterval <= 0 {
		cfg.PruneInterval = DefaultPruneInterval
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		bus:     bus,
		log:     log,
		logger:  logger,
	}
}

// Run starts all components.
// It blocks until the context is canceled or a component fails, then shuts
// the HTTP server down gracefully.
func (r *Runner) Run(ctx context.Context) error {
	ln := r.config.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", r.config.Addr)
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	srv := &http.Server{
		Handler:           LogRequests(r.handler, r.logger.With("component", "http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.bus != nil {
		ch := r.bus.SubscribeAll(100)
		g.Go(func() error {
			defer r.bus.Unsubscribe(ch)
			logEvents(ctx, ch, r.logger.With("component", "events"))
			return nil
		})
	}

	if r.log != nil && r.config.Retention > 0 {
		g.Go(func() error {
			r.pruneEvents(ctx)
			return nil
		})
	}

	return g.Wait()
}

// pruneEvents drops events older than the retention window on every tick.
func (r *Runner) pruneEvents(ctx context.Context) {
	logger := r.logger.With("component", "pruner")
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.log.Prune(r.config.Retention)
			if err != nil {
				logger.Error("prune events", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("pruned events", "count", n, "retention", r.config.Retention)
			}
		}
	}
}

// logEvents records every event at debug level until ctx is done or ch closes.
func logEvents(ctx context.Context, ch <-chan events.Event, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			logger.Debug("event",
				"type", e.EventType(),
				"entity_type", e.EntityType(),
				"entity_id", e.EntityID())
		}
	}
}
