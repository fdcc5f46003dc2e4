package resolve

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Option configures an Engine.
type Option func(*Engine)

// WithFs sets the filesystem configuration files are discovered and read on.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// WithWorkDir sets the directory discovery starts from. It defaults to the
// process working directory at resolution time.
func WithWorkDir(dir string) Option {
	return func(e *Engine) {
		e.workDir = dir
	}
}

// WithLogger sets the logger receiving debug tracing and diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
