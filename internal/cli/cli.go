package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the item store

	ownsApp bool
}

// NewCLI loads the config and opens the configured database. Commands are
// short lived, so the database file is not watched.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	watch := false
	cfg.Watch = &watch

	application, err := app.Open(ctx, app.WithConfig(cfg))
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, ownsApp: true}, nil
}

// GetCLIFromContext returns a CLI around the App stored in ctx (tests inject
// one), or opens the configured database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	return c.App.Close()
}
