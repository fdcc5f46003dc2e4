package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-flagconf/config/format"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/go-playground/validator/v10"
)

// ErrSchemaViolation is returned for schemas that cannot be resolved.
var ErrSchemaViolation = errors.New("schema violation")

// Names the resolution engine registers for itself.
const (
	FlagNoConfig   = "no-config"
	FlagConfigFile = "config-file"
	FlagConfig     = "config"
	FlagHelp       = "help"
	ShortHelp      = "h"
)

//nolint:gochecknoglobals // read-only lookup table.
var reservedLong = map[string]struct{}{
	FlagNoConfig:   {},
	FlagConfigFile: {},
	FlagConfig:     {},
	FlagHelp:       {},
}

// Validate checks the schema and returns every violation found, joined. Each
// violation wraps ErrSchemaViolation.
func (s Schema) Validate() error {
	err := validator.New().Struct(s)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			violations := make([]error, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				violations = append(violations, fmt.Errorf("%w: %s fails %q", ErrSchemaViolation, fieldErr.Namespace(), fieldErr.Tag()))
			}

			return errors.Join(violations...)
		}

		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	var violations []error

	violate := func(key, msg string, args ...any) {
		violations = append(violations, fmt.Errorf("%w: field %q: %s", ErrSchemaViolation, key, fmt.Sprintf(msg, args...)))
	}

	for _, tag := range s.Formats {
		if _, ok := format.Parse(tag); !ok {
			violations = append(violations, fmt.Errorf("%w: unknown format %q", ErrSchemaViolation, tag))
		}
	}

	keys := make(map[string]struct{}, len(s.Fields))
	longs := make(map[string]string, len(s.Fields))
	shorts := make(map[string]string, len(s.Fields))
	listPositional := ""

	for _, field := range s.Fields {
		if _, dup := keys[field.Key]; dup {
			violate(field.Key, "duplicate key")
		}

		keys[field.Key] = struct{}{}

		for _, part := range value.SplitPath(field.Key) {
			if part == "" || strings.ContainsAny(part, " \t\n") {
				violate(field.Key, "key segments must be non-empty words")

				break
			}
		}

		if listPositional != "" && field.Positional {
			violate(field.Key, "positional after list positional %q", listPositional)
		}

		if field.Positional {
			checkPositional(field, violate)

			if field.Kind == List {
				listPositional = field.Key
			}
		}

		if field.OnCLI() && !field.Positional {
			checkNames(field, longs, shorts, violate)
		}

		if _, _, err := field.DefaultValue(); err != nil {
			violate(field.Key, "%v", err)
		}
	}

	for _, field := range s.Fields {
		parts := value.SplitPath(field.Key)
		for i := 1; i < len(parts); i++ {
			parent := strings.Join(parts[:i], value.PathSeparator)
			if _, clash := keys[parent]; clash {
				violate(field.Key, "nested under field %q", parent)
			}
		}
	}

	return errors.Join(violations...)
}

func checkPositional(field Field, violate func(key, msg string, args ...any)) {
	if field.Availability != CliOnly {
		violate(field.Key, "positional fields must be cli_only, not %s", field.Availability)
	}

	if field.Kind == Boolean || field.Kind == Struct {
		violate(field.Key, "%s fields cannot be positional", field.Kind)
	}
}

func checkNames(field Field, longs, shorts map[string]string, violate func(key, msg string, args ...any)) {
	long := field.LongName()

	switch {
	case long == "" || strings.HasPrefix(long, "-") || strings.ContainsAny(long, " \t\n="):
		violate(field.Key, "invalid long name %q", long)
	case isReserved(long):
		violate(field.Key, "long name %q is reserved", long)
	}

	if other, dup := longs[long]; dup {
		violate(field.Key, "long name %q already used by %q", long, other)
	}

	longs[long] = field.Key

	if field.Short == "" {
		return
	}

	if field.Short == ShortHelp {
		violate(field.Key, "short name %q is reserved", field.Short)
	}

	if other, dup := shorts[field.Short]; dup {
		violate(field.Key, "short name %q already used by %q", field.Short, other)
	}

	shorts[field.Short] = field.Key
}

func isReserved(long string) bool {
	_, reserved := reservedLong[long]

	return reserved
}
