// Package flagconf resolves a program's settings from command-line flags and
// configuration files described by a single schema.
//
// Resolve parses the arguments, discovers or loads the configuration file,
// merges inline --config text over it and applies the per-field precedence
// rules of package resolve. Load does the same for a tagged struct and
// decodes the result into it. NewApp hands the resolved configuration to an
// Fx application.
package flagconf

import (
	"errors"

	"github.com/0xalexb/hjarta-flagconf/cli"
	"github.com/0xalexb/hjarta-flagconf/config"
	"github.com/0xalexb/hjarta-flagconf/config/discovery"
	"github.com/0xalexb/hjarta-flagconf/resolve"
	"github.com/0xalexb/hjarta-flagconf/schema"
)

// Resolve parses args against s and resolves the final configuration.
//
// Errors are a schema violation, a *cli.ExitError for malformed arguments,
// cli.ErrHelp when help was requested, or an ambiguous configuration
// discovery. Use ExitCode to turn any of them into a process exit status.
func Resolve(s schema.Schema, args []string, opts ...Option) (*resolve.Resolved, *resolve.Report, error) {
	return resolveWith(s, args, newOptions(opts))
}

func resolveWith(s schema.Schema, args []string, options *Options) (*resolve.Resolved, *resolve.Report, error) {
	if options.BaseName != "" {
		s.BaseName = options.BaseName
	}

	if len(options.Formats) > 0 {
		s.Formats = options.Formats
	}

	logger := options.logger()

	engine, err := resolve.New(s,
		resolve.WithFs(options.Fs),
		resolve.WithWorkDir(options.WorkDir),
		resolve.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}

	cliOpts := []cli.Option{
		cli.WithProgramName(options.ProgramName),
		cli.WithOutput(options.Stderr),
		cli.WithHelpOutput(options.Stdout),
		cli.WithFormats(s.Tags()),
	}
	if options.NoRawConfig {
		cliOpts = append(cliOpts, cli.WithoutRawConfig())
	}

	values, err := cli.Parse(s, args, cliOpts...)
	if err != nil {
		return nil, nil, err
	}

	return engine.Resolve(values)
}

// Load builds a schema from target's `conf` tags, resolves args against it
// and decodes the result into target. SetDefaults and Validate run afterwards
// when target implements config.Defaulter or config.Validator.
func Load[T any](target *T, args []string, opts ...Option) (*resolve.Report, error) {
	s, err := schema.FromStruct(target)
	if err != nil {
		return nil, err
	}

	resolved, report, err := Resolve(s, args, opts...)
	if err != nil {
		return report, err
	}

	err = config.Populate(target, resolved.Tree(), "")
	if err != nil {
		return report, err
	}

	return report, nil
}

// Provider returns an Fx-friendly constructor running Load for target.
func Provider[T any](target *T, args []string, opts ...Option) func() (*T, *resolve.Report, error) {
	return func() (*T, *resolve.Report, error) {
		report, err := Load(target, args, opts...)
		if err != nil {
			return nil, nil, err
		}

		return target, report, nil
	}
}

// ExitCode maps an error returned by this package to a process exit status.
func ExitCode(err error) int {
	var exitErr *cli.ExitError

	switch {
	case err == nil, errors.Is(err, cli.ErrHelp):
		return cli.ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, discovery.ErrAmbiguous):
		return cli.ExitAmbiguousConfig
	default:
		return cli.ExitUsage
	}
}
