package schema

import (
	"strings"

	"github.com/0xalexb/hjarta-flagconf/config/format"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/iancoleman/strcase"
)

// DefaultBaseName is the configuration file base name used when a schema
// declares none.
const DefaultBaseName = "config"

// Kind is the shape of a field's value.
type Kind int

// Field kinds.
const (
	Scalar Kind = iota
	Boolean
	List
	Struct
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Boolean:
		return "boolean"
	case List:
		return "list"
	case Struct:
		return "struct"
	default:
		return "unknown"
	}
}

// Type is the type of a scalar field, or of the elements of a list field.
type Type int

// Scalar types.
const (
	String Type = iota
	Int
	Float
)

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Availability says on which surfaces a field may be supplied.
type Availability int

// Availabilities.
const (
	CliAndConfig Availability = iota
	CliOnly
	ConfigOnly
	Internal
)

func (a Availability) String() string {
	switch a {
	case CliAndConfig:
		return "cli_and_config"
	case CliOnly:
		return "cli_only"
	case ConfigOnly:
		return "config_only"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// MultiValue says how command-line list values combine with the list from the
// configuration source.
type MultiValue int

// Multi-value behaviors.
const (
	// Extend appends command-line elements to the configured list.
	Extend MultiValue = iota
	// Overwrite replaces the configured list when at least one element is given.
	Overwrite
)

func (m MultiValue) String() string {
	if m == Overwrite {
		return "overwrite"
	}

	return "extend"
}

// Field describes one setting.
type Field struct {
	// Key is the configuration name; ":" separates nested keys.
	Key string `validate:"required"`
	// Long is the command-line long name. Empty means the kebab-case of Key.
	Long string `validate:"omitempty,excludes=:"`
	// Short is an optional one-character command-line name.
	Short        string       `validate:"omitempty,len=1,alphanum"`
	Help         string       `validate:"-"`
	Kind         Kind         `validate:"min=0,max=3"`
	Type         Type         `validate:"min=0,max=2"`
	Availability Availability `validate:"min=0,max=3"`
	MultiValue   MultiValue   `validate:"min=0,max=1"`
	// Positional fields take trailing command-line tokens instead of a flag.
	Positional bool `validate:"-"`
	// Default is a Go literal: string, integer, float, bool, slice or map.
	Default any `validate:"-"`
}

// LongName returns the command-line long name.
func (f Field) LongName() string {
	if f.Long != "" {
		return f.Long
	}

	parts := value.SplitPath(f.Key)
	for i, part := range parts {
		parts[i] = strcase.ToKebab(part)
	}

	return strings.Join(parts, "-")
}

// OnCLI reports whether the field may be supplied on the command line.
func (f Field) OnCLI() bool {
	return f.Availability == CliAndConfig || f.Availability == CliOnly
}

// InConfig reports whether the field is read from configuration sources.
func (f Field) InConfig() bool {
	return f.Availability == CliAndConfig || f.Availability == ConfigOnly
}

// Zero returns the empty value of the field's kind and type.
func (f Field) Zero() value.Value {
	switch f.Kind {
	case Boolean:
		return value.Bool(false)
	case List:
		return value.List()
	case Struct:
		return value.EmptyObject()
	case Scalar:
		return zeroScalar(f.Type)
	default:
		return value.Null()
	}
}

func zeroScalar(t Type) value.Value {
	switch t {
	case Int:
		return value.Int(0)
	case Float:
		return value.Float(0)
	case String:
		return value.String("")
	default:
		return value.String("")
	}
}

// Schema is the ordered list of fields a program accepts, plus the
// configuration file base name and recognized extensions.
type Schema struct {
	BaseName string   `validate:"omitempty,excludes=/"`
	Formats  []string `validate:"omitempty,dive,required"`
	Fields   []Field  `validate:"dive"`
}

// Base returns BaseName, or DefaultBaseName when it is empty.
func (s Schema) Base() string {
	if s.BaseName == "" {
		return DefaultBaseName
	}

	return s.BaseName
}

// Tags returns the recognized extension tags, or format.DefaultTags when none
// are declared.
func (s Schema) Tags() []string {
	if len(s.Formats) == 0 {
		return format.DefaultTags
	}

	return s.Formats
}

// Field returns the field with the given key.
func (s Schema) Field(key string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field, true
		}
	}

	return Field{}, false
}

// Positionals returns the positional fields in schema order.
func (s Schema) Positionals() []Field {
	var out []Field

	for _, field := range s.Fields {
		if field.Positional {
			out = append(out, field)
		}
	}

	return out
}
