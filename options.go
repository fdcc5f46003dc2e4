package flagconf

import (
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-flagconf/logging"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Options holds configuration settings for resolution and the application.
type Options struct {
	Modules     []fx.Option
	LogLevel    string
	LogFormat   string
	Logger      *slog.Logger
	Stdout      io.Writer
	Stderr      io.Writer
	WorkDir     string
	Fs          afero.Fs
	ProgramName string
	BaseName    string
	Formats     []string
	NoRawConfig bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

func newOptions(opts []Option) *Options {
	options := &Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	for _, apply := range opts {
		apply(options)
	}

	return options
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return logging.NewLogger(o.loggerConfig(), o.Stderr)
}

func (o *Options) loggerConfig() logging.LoggerConfig {
	return logging.LoggerConfig{Level: o.LogLevel, Format: o.LogFormat}
}

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the diagnostic log level.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the diagnostic log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogger replaces the diagnostic logger; level and format options are
// then ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithStdout sets where help output is written.
func WithStdout(w io.Writer) Option {
	return func(opts *Options) {
		if w != nil {
			opts.Stdout = w
		}
	}
}

// WithStderr sets where diagnostics and usage errors are written.
func WithStderr(w io.Writer) Option {
	return func(opts *Options) {
		if w != nil {
			opts.Stderr = w
		}
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
func WithWorkDir(dir string) Option {
	return func(opts *Options) {
		opts.WorkDir = dir
	}
}

// WithFs sets the filesystem configuration files are read from.
func WithFs(fs afero.Fs) Option {
	return func(opts *Options) {
		opts.Fs = fs
	}
}

// WithProgramName sets the program name shown in usage output.
func WithProgramName(name string) Option {
	return func(opts *Options) {
		opts.ProgramName = name
	}
}

// WithBaseName overrides the schema's configuration file base name.
func WithBaseName(name string) Option {
	return func(opts *Options) {
		opts.BaseName = name
	}
}

// WithFormats overrides the schema's recognized extension tags.
func WithFormats(tags ...string) Option {
	return func(opts *Options) {
		opts.Formats = tags
	}
}

// WithoutRawConfig removes the --config inline configuration flag.
func WithoutRawConfig() Option {
	return func(opts *Options) {
		opts.NoRawConfig = true
	}
}
