package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/coordinator"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/repository"
)

// App holds the storage stack shared by the TUI and the CLI commands.
// This is the main application container that manages their lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	Config *config.Config
	Store  *database.Store
	Repo   *repository.Repository
}

func buildConfig(opts []Option) appConfig {
	cfg := appConfig{watchDebounce: database.DefaultWatchDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// New creates an App over an already open database. The caller keeps
// ownership of db.
func New(ctx context.Context, db *sql.DB, opts ...Option) *App {
	cfg := buildConfig(opts)
	return newApp(ctx, db, cfg)
}

func newApp(ctx context.Context, db *sql.DB, cfg appConfig) *App {
	ctx, cancel := context.WithCancel(ctx)
	store := database.NewStore(ctx, db)
	return &App{
		db:     db,
		ctx:    ctx,
		cancel: cancel,
		logger: cfg.logger,
		Config: cfg.config,
		Store:  store,
		Repo:   repository.New(store),
	}
}

// Open opens the configured database and builds an App that owns it.
// When watching is enabled, writes from other processes refresh the store.
func Open(ctx context.Context, opts ...Option) (*App, error) {
	cfg := buildConfig(opts)

	db, err := database.InitDB(ctx, cfg.config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := newApp(ctx, db, cfg)
	a.ownsDB = true

	if cfg.config.WatchEnabled() {
		if err := a.Store.Watch(a.ctx, cfg.config.DatabasePath, cfg.watchDebounce); err != nil {
			// Live refresh is optional
			a.logger.Warn("not watching database for external writes", "error", err)
		}
	}

	a.logger.Debug("app opened", "database", cfg.config.DatabasePath)
	return a, nil
}

// DB returns the underlying database handle
func (a *App) DB() *sql.DB {
	return a.db
}

// NewCoordinator creates the view-state coordinator for one rendering
// surface. The caller must Close it.
func (a *App) NewCoordinator(ctx context.Context) *coordinator.Coordinator {
	return coordinator.New(ctx, a.Repo)
}

// Close stops change notification and, when the App opened the database,
// closes it.
func (a *App) Close() error {
	a.cancel()
	a.Store.Close()

	if !a.ownsDB {
		return nil
	}
	if err := a.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
