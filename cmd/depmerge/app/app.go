// Package app provides the application context and dependency management
// for the depmerge CLI. It centralizes configuration, logging and the
// construction of mergers for the commands.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/internal/cmd/output"
	"github.com/agentstation/depmerge/pkg/errors"
)

// App represents the depmerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized from the configuration sources and can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured format, or a format suited to
// stdout when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Merger builds a merger from the configuration. opts are applied after
// the configured values.
func (a *App) Merger(opts ...depmerge.Option) (*depmerge.Merger, error) {
	return depmerge.New(append(a.mergerOptions(), opts...)...)
}

// mergerOptions constructs merger options from the app configuration.
func (a *App) mergerOptions() []depmerge.Option {
	opts := []depmerge.Option{depmerge.WithLogger(a.logger)}

	if a.config.Strategy != "" {
		opts = append(opts, depmerge.WithStrategy(a.config.Strategy))
	}
	if a.config.Kind != "" {
		opts = append(opts, depmerge.WithKind(a.config.Kind))
	}
	if len(a.config.Pins) > 0 {
		opts = append(opts, depmerge.WithPins(a.config.Pins))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
