package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-flagconf/value"
)

// ErrTypeMismatch is returned when a value cannot represent a field.
var ErrTypeMismatch = errors.New("type mismatch")

// Coerce converts v to the field's kind and type. Numbers are read from
// numeric strings, strings from any scalar, and booleans from "true" or
// "false" in any case. List elements are converted one by one.
func (f Field) Coerce(v value.Value) (value.Value, error) {
	return f.coerce(v, true)
}

// DefaultValue returns the field's default converted to a value, and false
// when the field has none. Defaults are checked strictly: an Int field
// accepts integers only and a Boolean field accepts bools only.
func (f Field) DefaultValue() (value.Value, bool, error) {
	if f.Default == nil {
		return value.Null(), false, nil
	}

	native, err := value.FromNative(f.Default)
	if err != nil {
		return value.Null(), false, fmt.Errorf("default: %w", err)
	}

	converted, err := f.coerce(native, false)
	if err != nil {
		return value.Null(), false, fmt.Errorf("default: %w", err)
	}

	return converted, true, nil
}

func (f Field) coerce(v value.Value, lenient bool) (value.Value, error) {
	switch f.Kind {
	case Boolean:
		return coerceBool(v, lenient)
	case List:
		items, ok := v.AsList()
		if !ok {
			return value.Null(), mismatch(v, "list")
		}

		out := make([]value.Value, len(items))

		for i, item := range items {
			converted, err := coerceScalar(item, f.Type, lenient)
			if err != nil {
				return value.Null(), fmt.Errorf("element %d: %w", i, err)
			}

			out[i] = converted
		}

		return value.List(out...), nil
	case Struct:
		if v.Kind() != value.KindObject {
			return value.Null(), mismatch(v, "mapping")
		}

		return v, nil
	case Scalar:
		return coerceScalar(v, f.Type, lenient)
	default:
		return value.Null(), fmt.Errorf("%w: unknown kind %d", ErrTypeMismatch, f.Kind)
	}
}

func coerceBool(v value.Value, lenient bool) (value.Value, error) {
	if b, ok := v.AsBool(); ok {
		return value.Bool(b), nil
	}

	if s, ok := v.AsString(); ok && lenient {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		}
	}

	return value.Null(), mismatch(v, "bool")
}

//nolint:cyclop // one branch per source kind and target type.
func coerceScalar(v value.Value, t Type, lenient bool) (value.Value, error) {
	switch t {
	case String:
		if _, ok := v.AsString(); ok {
			return v, nil
		}

		if s, ok := v.Scalar(); ok && lenient {
			return value.String(s), nil
		}

		return value.Null(), mismatch(v, "string")
	case Int:
		if v.IsInt() {
			return v, nil
		}

		if !lenient {
			return value.Null(), mismatch(v, "integer")
		}

		if i, ok := v.AsInt(); ok {
			return value.Int(i), nil
		}

		if s, ok := v.AsString(); ok {
			i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err == nil {
				return value.Int(i), nil
			}
		}

		return value.Null(), mismatch(v, "integer")
	case Float:
		if f, ok := v.AsFloat(); ok {
			return value.Float(f), nil
		}

		if s, ok := v.AsString(); ok && lenient {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err == nil {
				return value.Float(f), nil
			}
		}

		return value.Null(), mismatch(v, "float")
	default:
		return value.Null(), fmt.Errorf("%w: unknown type %d", ErrTypeMismatch, t)
	}
}

func mismatch(v value.Value, want string) error {
	return fmt.Errorf("%w: want %s, got %s %s", ErrTypeMismatch, want, v.Kind(), v.String())
}
