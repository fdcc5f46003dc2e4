package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// ErrUnsupportedType is returned by FromNative for Go values that have no
// structured representation.
var ErrUnsupportedType = errors.New("unsupported type")

// Native converts v into plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any.
func (v Value) Native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if v.isInt {
			return v.i
		}

		return v.f
	case KindString:
		return v.s
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Native()
		}

		return items
	case KindObject:
		out := make(map[string]any, v.obj.Len())

		v.obj.Range(func(key string, item Value) bool {
			out[key] = item.Native()

			return true
		})

		return out
	default:
		return nil
	}
}

// FromNative converts a decoded Go value into a Value. Maps with string keys
// are converted with their keys sorted, since Go maps carry no order.
//
//nolint:cyclop,funlen // one case per native type.
func FromNative(in any) (Value, error) {
	switch typed := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return typed, nil
	case bool:
		return Bool(typed), nil
	case string:
		return String(typed), nil
	case int:
		return Int(int64(typed)), nil
	case int8:
		return Int(int64(typed)), nil
	case int16:
		return Int(int64(typed)), nil
	case int32:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case uint:
		return fromUint(uint64(typed)), nil
	case uint8:
		return Int(int64(typed)), nil
	case uint16:
		return Int(int64(typed)), nil
	case uint32:
		return Int(int64(typed)), nil
	case uint64:
		return fromUint(typed), nil
	case float32:
		return Float(float64(typed)), nil
	case float64:
		return Float(typed), nil
	case json.Number:
		return fromJSONNumber(typed)
	case time.Time:
		return String(typed.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return String(typed.String()), nil
	case []any:
		return fromSlice(reflect.ValueOf(typed))
	case map[string]any:
		return fromStringMap(typed)
	}

	rv := reflect.ValueOf(in)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}

		return FromNative(rv.Elem().Interface())
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedType, in)
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}

	return Int(int64(u))
}

func fromJSONNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return Null(), fmt.Errorf("number %q: %w", n.String(), err)
	}

	return Float(f), nil
}

func fromSlice(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())

	for i := range items {
		item, err := FromNative(rv.Index(i).Interface())
		if err != nil {
			return Null(), fmt.Errorf("index %d: %w", i, err)
		}

		items[i] = item
	}

	return Value{kind: KindList, list: items}, nil
}

func fromStringMap(in map[string]any) (Value, error) {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	obj := NewObject()

	for _, key := range keys {
		item, err := FromNative(in[key])
		if err != nil {
			return Null(), fmt.Errorf("key %q: %w", key, err)
		}

		obj.Set(key, item)
	}

	return FromObject(obj), nil
}

func fromMap(rv reflect.Value) (Value, error) {
	converted := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		converted[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}

	return fromStringMap(converted)
}
