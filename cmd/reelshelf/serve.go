package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/reelshelf/internal/api/v1"
	"github.com/vmunix/reelshelf/internal/catalog"
	"github.com/vmunix/reelshelf/internal/config"
	"github.com/vmunix/reelshelf/internal/events"
	"github.com/vmunix/reelshelf/internal/server"
	"github.com/vmunix/reelshelf/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog server",
	Long: `Run the HTTP server with the web page and JSON API.

The catalog lives in memory for the lifetime of the process. Without
--config the standard locations are searched; if none exists the
built-in defaults are used.`,
	Args: cobra.NoArgs,
	RunE: runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to config file")
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadServeConfig(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(configErr)
		}
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: server.ParseLogLevel(cfg.Server.LogLevel),
	}))

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"session", a.session.ID(),
		"strict", cfg.Catalog.IsStrict(),
		"rate_limit", cfg.RateLimit.RPS,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(server.Config{
		Addr:      addr,
		Retention: cfg.Events.RetentionDuration(),
	}, a.handler, a.bus, a.eventLog, logger)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// loadServeConfig loads path, or the discovered config when path is empty.
// With nothing to discover, defaults are used.
func loadServeConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			if os.Getenv("REELSHELF_CONFIG") != "" {
				return nil, err
			}
			return config.Default(), nil
		}
		path = found
	}
	return config.Load(path)
}

// app holds the wired components of a running server.
type app struct {
	db       *sql.DB
	bus      *events.Bus
	eventLog *events.EventLog
	session  *catalog.Session
	handler  http.Handler
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := catalog.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := catalog.NewStore(db, cfg.Catalog.IsStrict())
	if err := catalog.Seed(store, seedsFromConfig(cfg.Catalog)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger.With("component", "bus"))

	session, err := catalog.NewSession(store, bus, logger.With("component", "catalog"))
	if err != nil {
		_ = bus.Close()
		_ = db.Close()
		return nil, err
	}

	mux := http.NewServeMux()

	apiV1, err := v1.New(v1.ServerDeps{
		Catalog:  session,
		EventLog: eventLog,
		Logger:   logger.With("component", "api"),
	}, v1.Config{
		Version:   version,
		RateLimit: cfg.RateLimit.RPS,
		Burst:     cfg.RateLimit.Burst,
	})
	if err != nil {
		_ = bus.Close()
		_ = db.Close()
		return nil, err
	}
	apiV1.RegisterRoutes(mux)

	web.New(session, logger).RegisterRoutes(mux)

	return &app{db: db, bus: bus, eventLog: eventLog, session: session, handler: mux}, nil
}

func (a *app) Close() {
	_ = a.bus.Close()
	_ = a.db.Close()
}

// seedsFromConfig returns the built-in samples (if enabled) followed by the
// configured seed entries.
func seedsFromConfig(c config.CatalogConfig) []catalog.SeedEntry {
	var seeds []catalog.SeedEntry
	if c.UseDefaultSeed() {
		seeds = append(seeds, catalog.DefaultSeed()...)
	}
	for _, s := range c.Seed {
		e := catalog.SeedEntry{
			NewEntry: catalog.NewEntry{
				Title:              s.Title,
				CoverURL:           s.CoverURL,
				Type:               catalog.MediaType(s.Type),
				Year:               s.Year,
				Rating:             s.Rating,
				Description:        s.Description,
				OwnedByCurrentUser: s.Owned,
			},
			Watched: s.Watched,
		}
		if s.EpisodeCount > 0 {
			n := s.EpisodeCount
			e.EpisodeCount = &n
		}
		seeds = append(seeds, e)
	}
	return seeds
}
