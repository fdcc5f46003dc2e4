package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-flagconf/config/loader"
	"github.com/0xalexb/hjarta-flagconf/schema"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/spf13/pflag"
)

// Process exit statuses.
const (
	ExitOK              = 0
	ExitUsage           = 1
	ExitAmbiguousConfig = 2
)

// ErrHelp is returned by Parse when -h or --help was given. Usage has already
// been written to the output.
var ErrHelp = errors.New("help requested")

// ExitError is an error carrying the exit status a program should use.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

type options struct {
	programName string
	output      io.Writer
	helpOutput  io.Writer
	rawConfig   bool
	formats     []string
}

// Option configures Parse.
type Option func(*options)

// WithoutRawConfig leaves the --config flag unregistered.
func WithoutRawConfig() Option {
	return func(o *options) {
		o.rawConfig = false
	}
}

// WithProgramName sets the name shown in usage output.
func WithProgramName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.programName = name
		}
	}
}

// WithOutput sets where usage and parse errors are written.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithHelpOutput sets where usage is written when help was requested.
// Defaults to the WithOutput writer.
func WithHelpOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.helpOutput = w
		}
	}
}

// WithFormats sets the extension tags recognized for inline Struct values.
func WithFormats(tags []string) Option {
	return func(o *options) {
		o.formats = tags
	}
}

func newOptions(opts []Option) options {
	cfg := options{
		programName: filepath.Base(os.Args[0]),
		output:      os.Stderr,
		rawConfig:   true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.helpOutput == nil {
		cfg.helpOutput = cfg.output
	}

	return cfg
}

// flagBinding links a registered flag to its schema field.
type flagBinding struct {
	field schema.Field
	long  string
}

// Parse parses args according to s. The schema is expected to be valid.
func Parse(s schema.Schema, args []string, opts ...Option) (*Values, error) {
	cfg := newOptions(opts)
	flags, bindings := newFlagSet(s, opts...)

	var usage bytes.Buffer

	flags.SetOutput(&usage)

	err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			flush(cfg.helpOutput, &usage)

			return nil, ErrHelp
		}

		flush(cfg.output, &usage)

		return nil, usageError(err)
	}

	values := NewValues()
	values.NoConfig, _ = flags.GetBool(schema.FlagNoConfig)
	values.ConfigFile, _ = flags.GetString(schema.FlagConfigFile)

	if cfg.rawConfig && flags.Changed(schema.FlagConfig) {
		values.RawConfig, _ = flags.GetString(schema.FlagConfig)
		values.HasRawConfig = true
	}

	inline := loader.New(loader.WithFormats(cfg.formats))

	for _, binding := range bindings {
		if !flags.Changed(binding.long) {
			continue
		}

		supplied, err := flagValue(flags, binding, inline)
		if err != nil {
			return nil, usageError(fmt.Errorf("invalid argument for --%s: %w", binding.long, err))
		}

		values.Set(binding.field.Key, supplied)
	}

	values.Leftover, err = assignPositionals(s, flags.Args(), values)
	if err != nil {
		return nil, usageError(err)
	}

	return values, nil
}

// newFlagSet builds the FlagSet for s without parsing anything. The returned
// bindings list the flag-backed fields in schema order.
func newFlagSet(s schema.Schema, opts ...Option) (*pflag.FlagSet, []flagBinding) {
	cfg := newOptions(opts)

	flags := pflag.NewFlagSet(cfg.programName, pflag.ContinueOnError)
	flags.SetOutput(cfg.output)
	flags.SortFlags = false

	flags.Bool(schema.FlagNoConfig, false, "Do not load any configuration source")
	flags.String(schema.FlagConfigFile, "", "Path to the configuration file")

	if cfg.rawConfig {
		flags.String(schema.FlagConfig, "", "Inline configuration text (JSON, YAML or TOML)")
	}

	bindings := make([]flagBinding, 0, len(s.Fields))

	for _, field := range s.Fields {
		if !field.OnCLI() || field.Positional {
			continue
		}

		long := field.LongName()
		usage := helpText(field)

		switch {
		case field.Kind == schema.Boolean:
			flags.BoolP(long, field.Short, false, usage)
		case field.Kind == schema.List:
			flags.StringArrayP(long, field.Short, nil, usage)
		case field.Kind == schema.Scalar && field.Type == schema.Int:
			flags.Int64P(long, field.Short, 0, usage)
		case field.Kind == schema.Scalar && field.Type == schema.Float:
			flags.Float64P(long, field.Short, 0, usage)
		default:
			flags.StringP(long, field.Short, "", usage)
		}

		bindings = append(bindings, flagBinding{field: field, long: long})
	}

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [options]%s\n\nOptions:\n", cfg.programName, positionalUsage(s))
		flags.PrintDefaults()
	}

	return flags, bindings
}

func flush(w io.Writer, buf *bytes.Buffer) {
	if buf.Len() > 0 {
		_, _ = buf.WriteTo(w)
	}
}

func helpText(field schema.Field) string {
	usage := field.Help

	def, ok, err := field.DefaultValue()
	if ok && err == nil {
		if usage != "" {
			usage += " "
		}

		usage += "(default " + def.String() + ")"
	}

	return usage
}

func positionalUsage(s schema.Schema) string {
	var out string

	for _, field := range s.Positionals() {
		name := field.LongName()
		if field.Kind == schema.List {
			name += "..."
		}

		out += " [" + name + "]"
	}

	return out
}

func flagValue(flags *pflag.FlagSet, binding flagBinding, inline *loader.Loader) (value.Value, error) {
	field := binding.field

	switch {
	case field.Kind == schema.Boolean:
		b, err := flags.GetBool(binding.long)

		return value.Bool(b), err
	case field.Kind == schema.List:
		items, err := flags.GetStringArray(binding.long)
		if err != nil {
			return value.Null(), err
		}

		return coerceTokens(field, items)
	case field.Kind == schema.Struct:
		text, err := flags.GetString(binding.long)
		if err != nil {
			return value.Null(), err
		}

		tree, _, err := inline.LoadFromRaw(text)

		return tree, err
	case field.Type == schema.Int:
		i, err := flags.GetInt64(binding.long)

		return value.Int(i), err
	case field.Type == schema.Float:
		f, err := flags.GetFloat64(binding.long)

		return value.Float(f), err
	default:
		text, err := flags.GetString(binding.long)

		return value.String(text), err
	}
}

func coerceTokens(field schema.Field, tokens []string) (value.Value, error) {
	items := make([]value.Value, len(tokens))
	for i, token := range tokens {
		items[i] = value.String(token)
	}

	return field.Coerce(value.List(items...))
}

// assignPositionals hands trailing tokens to positional fields in schema
// order and returns the unconsumed tokens.
func assignPositionals(s schema.Schema, args []string, values *Values) ([]string, error) {
	rest := args

	for _, field := range s.Positionals() {
		if len(rest) == 0 {
			break
		}

		if field.Kind == schema.List {
			supplied, err := coerceTokens(field, rest)
			if err != nil {
				return nil, fmt.Errorf("invalid argument for %s: %w", field.LongName(), err)
			}

			values.Set(field.Key, supplied)
			rest = nil

			break
		}

		supplied, err := field.Coerce(value.String(rest[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid argument for %s: %w", field.LongName(), err)
		}

		values.Set(field.Key, supplied)
		rest = rest[1:]
	}

	return append([]string{}, rest...), nil
}
