// Package loader turns a configuration source, either a file path or inline
// text, into a structured value.
//
// Files are read through config/fetcher/file and decoded by the parser for
// their extension; an unrecognized extension falls back to YAML. Inline text
// has no extension, so each format is tried in turn until one yields a
// mapping.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-flagconf/config"
	filefetcher "github.com/0xalexb/hjarta-flagconf/config/fetcher/file"
	rawfetcher "github.com/0xalexb/hjarta-flagconf/config/fetcher/raw"
	"github.com/0xalexb/hjarta-flagconf/config/format"
	hclparser "github.com/0xalexb/hjarta-flagconf/config/parser/hcl"
	jsonparser "github.com/0xalexb/hjarta-flagconf/config/parser/json"
	tomlparser "github.com/0xalexb/hjarta-flagconf/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-flagconf/config/parser/yaml"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/spf13/afero"
)

var (
	// ErrSourceRead is returned when a configuration file cannot be read.
	ErrSourceRead = errors.New("config source read error")
	// ErrSourceParse is returned when configuration data cannot be decoded
	// into a mapping.
	ErrSourceParse = errors.New("config source parse error")
)

// Loader reads configuration sources.
type Loader struct {
	fs     afero.Fs
	tags   []string
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFs sets the filesystem files are read from.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithFormats sets the recognized extension tags. HCL is only tried for
// inline text when one of the tags maps to it.
func WithFormats(tags []string) Option {
	return func(l *Loader) {
		if len(tags) > 0 {
			l.tags = tags
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader reading from the operating system filesystem and
// recognizing format.DefaultTags unless configured otherwise.
func New(opts ...Option) *Loader {
	loader := &Loader{
		fs:     afero.NewOsFs(),
		tags:   format.DefaultTags,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(loader)
	}

	return loader
}

// ParserFor returns the parser decoding f.
func ParserFor(f format.Format) config.Parser {
	switch f {
	case format.JSON:
		return jsonparser.NewParser()
	case format.TOML:
		return tomlparser.NewParser()
	case format.HCL:
		return hclparser.NewParser()
	case format.YAML:
		return yamlparser.NewParser()
	default:
		return yamlparser.NewParser()
	}
}

// LoadFromPath reads and decodes the file at path. The returned format is the
// one actually used for decoding. An empty file decodes to an empty object.
func (l *Loader) LoadFromPath(path string) (value.Value, format.Format, error) {
	detected, ok := format.Detect(path, l.tags)
	if !ok {
		detected = format.YAML
		l.logger.Debug("unrecognized config extension, decoding as yaml", slog.String("path", path))
	}

	fetcher, err := filefetcher.NewFetcher(l.fs, path)()
	if err != nil {
		return value.Null(), detected, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	tree, err := decode(ParserFor(detected), fetcher)
	if err != nil {
		return value.Null(), detected, fmt.Errorf("%w: %s as %s: %w", ErrSourceParse, fetcher.Path(), detected, err)
	}

	return tree, detected, nil
}

// LoadFromRaw decodes inline configuration text, trying JSON, YAML and TOML
// in that order, then HCL when it is a recognized format. The first attempt
// producing a mapping wins.
func (l *Loader) LoadFromRaw(text string) (value.Value, format.Format, error) {
	if strings.TrimSpace(text) == "" {
		return value.Null(), "", fmt.Errorf("%w: inline text is empty", ErrSourceParse)
	}

	trials := format.RawTrialOrder
	if format.Recognizes(l.tags, format.HCL) {
		trials = append(append([]format.Format{}, trials...), format.HCL)
	}

	attempts := make([]error, 0, len(trials))

	for _, candidate := range trials {
		tree, err := decode(ParserFor(candidate), rawfetcher.NewFetcher(text))
		if err == nil {
			l.logger.Debug("inline config decoded", slog.String("format", candidate.String()))

			return tree, candidate, nil
		}

		attempts = append(attempts, fmt.Errorf("%s: %w", candidate, err))
	}

	return value.Null(), "", fmt.Errorf("%w: inline text matches no format: %w", ErrSourceParse, errors.Join(attempts...))
}

func decode(parser config.Parser, fetcher config.DataFetcher) (value.Value, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return value.Null(), fmt.Errorf("reading data error: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return value.EmptyObject(), nil
	}

	tree, err := parser.Parse(data)
	if err != nil {
		return value.Null(), err
	}

	switch tree.Kind() {
	case value.KindObject:
		return tree, nil
	case value.KindNull:
		return value.EmptyObject(), nil
	default:
		return value.Null(), fmt.Errorf("top-level %s is not a mapping", tree.Kind())
	}
}
