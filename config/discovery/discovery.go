package discovery

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExitCodeAmbiguous is the process exit status for ambiguous discovery.
const ExitCodeAmbiguous = 2

// ErrAmbiguous is wrapped by every *AmbiguityError.
var ErrAmbiguous = errors.New("ambiguous configuration files")

// AmbiguityError names the candidate files that made discovery ambiguous.
type AmbiguityError struct {
	Paths   []string
	SameDir bool
}

func (e *AmbiguityError) Error() string {
	if e.SameDir {
		return fmt.Sprintf("multiple config files in same directory: %s", strings.Join(e.Paths, ", "))
	}

	return fmt.Sprintf("multiple config files found walking up: %s", strings.Join(e.Paths, " and "))
}

func (e *AmbiguityError) Unwrap() error {
	return ErrAmbiguous
}

// Finder searches a filesystem for configuration files.
type Finder struct {
	fs     afero.Fs
	logger *slog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for debug tracing of the walk.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFinder creates a Finder over fs. A nil fs means the operating system
// filesystem.
func NewFinder(fs afero.Fs, opts ...Option) *Finder {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	finder := &Finder{
		fs:     fs,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(finder)
	}

	return finder
}

// Find looks for "<baseName>.<ext>" in startDir and each of its ancestors.
// It returns the single match, or found=false when there is none. A relative
// startDir is made absolute against the process working directory.
func (f *Finder) Find(startDir, baseName string, exts []string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory %q: %w", startDir, err)
	}

	var found string

	for {
		matches, err := f.matchesIn(dir, baseName, exts)
		if err != nil {
			return "", false, err
		}

		switch {
		case len(matches) > 1:
			return "", false, &AmbiguityError{Paths: matches, SameDir: true}
		case len(matches) == 1 && found != "":
			return "", false, &AmbiguityError{Paths: []string{found, matches[0]}}
		case len(matches) == 1:
			found = matches[0]
			f.logger.Debug("config file candidate", slog.String("path", found))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return found, found != "", nil
}

func (f *Finder) matchesIn(dir, baseName string, exts []string) ([]string, error) {
	var matches []string

	seen := make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		name := baseName + "." + strings.TrimPrefix(ext, ".")
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		candidate := filepath.Join(dir, name)

		stat, err := f.fs.Stat(candidate)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, iofs.ErrPermission) {
				continue
			}

			return nil, fmt.Errorf("stat %q: %w", candidate, err)
		}

		if stat.Mode().IsRegular() {
			matches = append(matches, candidate)
		}
	}

	return matches, nil
}
