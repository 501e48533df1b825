package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/todo/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config        *config.Config
	logger        *slog.Logger
	watchDebounce time.Duration
}

// WithConfig sets the loaded configuration for the application
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithWatchDebounce sets how long file events settle before the store reloads
func WithWatchDebounce(d time.Duration) Option {
	return func(c *appConfig) {
		c.watchDebounce = d
	}
}
