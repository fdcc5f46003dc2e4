package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
)

// Struct tags read by FromStruct.
const (
	TagConf = "conf"
	TagHelp = "help"
)

// ErrInvalidTarget is returned by FromStruct for values that are not structs
// or pointers to structs.
var ErrInvalidTarget = errors.New("target must be a struct or a pointer to a struct")

// FromStruct builds a schema from the exported fields of target.
//
// The `conf` tag holds the key followed by options:
//
//	Port     int      `conf:"port,short=p,default=8080" help:"port to listen on"`
//	Secret   string   `conf:"special_secret,config_only"`
//	Commands []string `conf:"commands,cli_only,positional"`
//	Tags     []string `conf:"tags,overwrite,default=a,b"`
//
// An empty key means the snake_case of the field name. Options are short=,
// long=, cli_only, config_only, cli_and_config, internal, extend, overwrite,
// positional and default=. The default option must come last; it takes the
// rest of the tag, and list defaults are comma-separated. Fields without a
// `conf` tag are internal; `conf:"-"` skips the field.
func FromStruct(target any) (Schema, error) {
	rt := reflect.TypeOf(target)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if rt == nil || rt.Kind() != reflect.Struct {
		return Schema{}, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	var out Schema

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag, tagged := sf.Tag.Lookup(TagConf)
		if tag == "-" {
			continue
		}

		field, err := fieldFromStruct(sf, tag, tagged)
		if err != nil {
			return Schema{}, fmt.Errorf("%w: %s.%s: %w", ErrSchemaViolation, rt.Name(), sf.Name, err)
		}

		out.Fields = append(out.Fields, field)
	}

	return out, nil
}

func fieldFromStruct(sf reflect.StructField, tag string, tagged bool) (Field, error) {
	kind, typ, err := shapeOf(sf.Type)
	if err != nil {
		return Field{}, err
	}

	field := Field{
		Key:  strcase.ToSnake(sf.Name),
		Help: sf.Tag.Get(TagHelp),
		Kind: kind,
		Type: typ,
	}

	if !tagged {
		field.Availability = Internal

		return field, nil
	}

	key, rest, _ := strings.Cut(tag, ",")
	if key != "" {
		field.Key = key
	}

	for rest != "" {
		var option string
		if strings.HasPrefix(rest, "default=") {
			option, rest = rest, ""
		} else {
			option, rest, _ = strings.Cut(rest, ",")
		}

		err := applyOption(&field, strings.TrimSpace(option))
		if err != nil {
			return Field{}, err
		}
	}

	return field, nil
}

//nolint:cyclop // one case per option.
func applyOption(field *Field, option string) error {
	name, arg, _ := strings.Cut(option, "=")

	switch name {
	case "":
	case "short":
		field.Short = arg
	case "long":
		field.Long = arg
	case "cli_only":
		field.Availability = CliOnly
	case "config_only":
		field.Availability = ConfigOnly
	case "cli_and_config":
		field.Availability = CliAndConfig
	case "internal":
		field.Availability = Internal
	case "extend":
		field.MultiValue = Extend
	case "overwrite":
		field.MultiValue = Overwrite
	case "positional":
		field.Positional = true
	case "default":
		def, err := parseDefault(*field, arg)
		if err != nil {
			return err
		}

		field.Default = def
	default:
		return fmt.Errorf("unknown option %q", name)
	}

	return nil
}

//nolint:gochecknoglobals // reflected once.
var durationType = reflect.TypeOf(time.Duration(0))

func shapeOf(rt reflect.Type) (Kind, Type, error) {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if rt == durationType {
		return Scalar, String, nil
	}

	switch rt.Kind() {
	case reflect.Bool:
		return Boolean, String, nil
	case reflect.Slice, reflect.Array:
		elem := rt.Elem()
		if elem.Kind() == reflect.Uint8 {
			return Scalar, String, nil
		}

		typ, ok := scalarType(elem)
		if !ok {
			return Struct, String, nil
		}

		return List, typ, nil
	case reflect.Struct, reflect.Map, reflect.Interface:
		return Struct, String, nil
	default:
		typ, ok := scalarType(rt)
		if !ok {
			return Scalar, String, fmt.Errorf("unsupported field type %s", rt)
		}

		return Scalar, typ, nil
	}
}

func scalarType(rt reflect.Type) (Type, bool) {
	if rt == durationType {
		return String, true
	}

	//nolint:exhaustive // remaining kinds are not scalars.
	switch rt.Kind() {
	case reflect.String:
		return String, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	default:
		return String, false
	}
}

func parseDefault(field Field, literal string) (any, error) {
	switch field.Kind {
	case Boolean:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("boolean default %q: %w", literal, err)
		}

		return b, nil
	case List:
		if literal == "" {
			return []any{}, nil
		}

		parts := strings.Split(literal, ",")
		items := make([]any, len(parts))

		for i, part := range parts {
			item, err := parseScalarDefault(field.Type, strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}

			items[i] = item
		}

		return items, nil
	case Struct:
		return nil, errors.New("struct fields take no tag default")
	case Scalar:
		return parseScalarDefault(field.Type, literal)
	default:
		return nil, fmt.Errorf("unknown kind %s", field.Kind)
	}
}

func parseScalarDefault(t Type, literal string) (any, error) {
	switch t {
	case Int:
		i, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("integer default %q: %w", literal, err)
		}

		return i, nil
	case Float:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("float default %q: %w", literal, err)
		}

		return f, nil
	case String:
		return literal, nil
	default:
		return literal, nil
	}
}
