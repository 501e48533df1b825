package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the terminal
	logFile, err := logging.Init(cfg.LogFile, cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return Run(ctx, cfg)
}

// Run opens the database described by cfg and runs the TUI until the user
// quits or ctx is cancelled
func Run(ctx context.Context, cfg *config.Config, opts ...tea.ProgramOption) error {
	application, err := app.Open(ctx, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	coord := application.NewCoordinator(ctx)
	// Closing the coordinator waits for in-flight writes
	defer coord.Close()

	model := tui.New(ctx, coord, cfg)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("todo exited")
	return nil
}
