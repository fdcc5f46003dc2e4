package resolve

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-flagconf/cli"
	"github.com/0xalexb/hjarta-flagconf/config/discovery"
	"github.com/0xalexb/hjarta-flagconf/config/loader"
	"github.com/0xalexb/hjarta-flagconf/schema"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/spf13/afero"
)

// ErrConfigType is reported when a configured value does not fit its field.
var ErrConfigType = errors.New("config value type error")

// Engine resolves configurations for one schema.
type Engine struct {
	schema  schema.Schema
	fs      afero.Fs
	workDir string
	logger  *slog.Logger
}

// New validates s and returns an Engine for it.
func New(s schema.Schema, opts ...Option) (*Engine, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		schema: s,
		fs:     afero.NewOsFs(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// Schema returns the schema the engine resolves.
func (e *Engine) Schema() schema.Schema {
	return e.schema
}

// Resolve builds the final configuration from values, which may be nil when
// nothing was supplied on the command line. The only error returned is an
// ambiguous discovery, wrapping discovery.ErrAmbiguous.
func (e *Engine) Resolve(values *cli.Values) (*Resolved, *Report, error) {
	if values == nil {
		values = cli.NewValues()
	}

	report := &Report{NoConfig: values.NoConfig}

	tree, err := e.loadSources(values, report)
	if err != nil {
		return nil, report, err
	}

	resolved := newResolved(e.schema.Fields)
	resolved.args = append([]string{}, values.Leftover...)

	for _, field := range e.schema.Fields {
		in := Input{}
		in.CLI, in.HasCLI = values.Field(field.Key)

		if field.InConfig() {
			in.Config, in.HasConfig = e.configValue(tree, field, report)
		}

		v, source := ResolveField(field, in)
		resolved.set(field.Key, v, source)
	}

	return resolved, report, nil
}

func (e *Engine) loadSources(values *cli.Values, report *Report) (value.Value, error) {
	if values.NoConfig {
		e.logger.Debug("configuration sources disabled")

		return value.EmptyObject(), nil
	}

	sources := loader.New(loader.WithFs(e.fs), loader.WithFormats(e.schema.Tags()), loader.WithLogger(e.logger))
	tree := value.EmptyObject()

	path := values.ConfigFile
	if path == "" {
		found, err := e.discover()
		if errors.Is(err, discovery.ErrAmbiguous) {
			return value.Null(), err
		}

		if err != nil {
			e.diagnose(report, err)
		}

		path = found
	}

	if path != "" {
		loaded, used, err := sources.LoadFromPath(path)
		if err != nil {
			e.diagnose(report, err, slog.String("path", path), slog.String("format", used.String()))
		} else {
			tree = loaded
			report.UsedPath = path
			report.UsedFormat = used
			e.logger.Debug("config file loaded", slog.String("path", path), slog.String("format", used.String()))
		}
	}

	if values.HasRawConfig {
		raw, used, err := sources.LoadFromRaw(values.RawConfig)
		if err != nil {
			e.diagnose(report, err)
		} else {
			tree = value.Merge(tree, raw)
			report.RawFormat = used
			e.logger.Debug("inline config merged", slog.String("format", used.String()))
		}
	}

	return tree, nil
}

func (e *Engine) discover() (string, error) {
	dir := e.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}

		dir = wd
	}

	finder := discovery.NewFinder(e.fs, discovery.WithLogger(e.logger))

	path, found, err := finder.Find(dir, e.schema.Base(), e.schema.Tags())
	if err != nil {
		return "", err
	}

	if !found {
		e.logger.Debug("no config file found", slog.String("dir", dir), slog.String("base", e.schema.Base()))
	}

	return path, nil
}

func (e *Engine) configValue(tree value.Value, field schema.Field, report *Report) (value.Value, bool) {
	raw, ok := value.Lookup(tree, field.Key)
	if !ok || raw.IsNull() {
		return value.Null(), false
	}

	coerced, err := field.Coerce(raw)
	if err != nil {
		e.diagnose(report, fmt.Errorf("%w: %s: %w", ErrConfigType, field.Key, err), slog.String("key", field.Key))

		return value.Null(), false
	}

	return coerced, true
}

func (e *Engine) diagnose(report *Report, err error, attrs ...any) {
	report.Diagnostics = append(report.Diagnostics, err)
	e.logger.Warn("config source ignored", append(attrs, slog.Any("error", err))...)
}
