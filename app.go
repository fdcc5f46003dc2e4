package flagconf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-flagconf/resolve"
	"github.com/0xalexb/hjarta-flagconf/schema"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application started from a resolved configuration. The
// container supplies *resolve.Resolved, *resolve.Report, *slog.Logger and
// logging.LoggerConfig to every module.
type App struct {
	app      *fx.App
	resolved *resolve.Resolved
	report   *resolve.Report
}

// NewApp resolves args against s, then builds the Fx application.
func NewApp(s schema.Schema, args []string, opts ...Option) (*App, error) {
	options := newOptions(opts)
	logger := options.logger()
	options.Logger = logger

	resolved, report, err := resolveWith(s, args, options)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return &App{
		app:      configure(options, logger, resolved, report),
		resolved: resolved,
		report:   report,
	}, nil
}

func configure(options *Options, logger *slog.Logger, resolved *resolve.Resolved, report *resolve.Report) *fx.App {
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(options.loggerConfig()),
		fx.Supply(logger),
		fx.Supply(resolved),
		fx.Supply(report),
		fx.Options(options.Modules...),
	)
}

// Resolved returns the configuration the application was built with.
func (app *App) Resolved() *resolve.Resolved {
	return app.resolved
}

// Report returns the sources the configuration was resolved from.
func (app *App) Report() *resolve.Report {
	return app.report
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
