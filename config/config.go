package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-flagconf/value"
)

// ErrPathNotFound is returned when the requested path does not exist in the parsed document.
var ErrPathNotFound = errors.New("path not found")

// Parser defines an interface for decoding raw configuration data into a structured value.
//
// Implementations decode one serialization format each (see config/parser/yaml,
// config/parser/json, config/parser/toml and config/parser/hcl). Path navigation
// is format-agnostic and happens on the returned tree.
type Parser interface {
	Parse(data []byte) (value.Value, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, navigates to path, decodes,
// sets defaults, and validates configuration data.
//
// The path uses colon (:) as the separator for nested keys:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "" (empty path) decodes the entire document
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		tree, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		section, found := value.Lookup(tree, path)
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		err = Populate(target, section, path)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Populate decodes v into target, then runs the Defaulter and Validator hooks
// when target implements them. The path is only used for logging.
func Populate[T any](target *T, v value.Value, path string) error {
	err := Decode(v, target)
	if err != nil {
		return fmt.Errorf("decoding error: %w", err)
	}

	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
