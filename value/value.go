package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable structured value. The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	isInt bool
	s     string
	list  []Value
	obj   *Object
}

// Null returns the Null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integral number.
func Int(i int64) Value {
	return Value{kind: KindNumber, i: i, f: float64(i), isInt: true}
}

// Float returns a floating point number.
func Float(f float64) Value {
	return Value{kind: KindNumber, f: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List returns a list holding a copy of items.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)

	return Value{kind: KindList, list: copied}
}

// FromObject wraps an object. A nil object becomes an empty one.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}

	return Value{kind: KindObject, obj: o}
}

// EmptyObject returns a Value holding an empty object.
func EmptyObject() Value {
	return FromObject(nil)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns v as an integer. Floats with no fractional part are accepted.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	if v.isInt {
		return v.i, true
	}

	if v.f != math.Trunc(v.f) || v.f >= math.MaxInt64 || v.f < math.MinInt64 {
		return 0, false
	}

	return int64(v.f), true
}

// AsFloat returns v as a float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindNumber
}

// IsInt reports whether v is a number that was created as an integer.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && v.isInt
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsList returns a copy of the list items held by v.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	items := make([]Value, len(v.list))
	copy(items, v.list)

	return items, true
}

// Len returns the number of list items or object keys, and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// AsObject returns the object held by v. Callers must not mutate it; use
// Object.Clone for a private copy.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}

	return v.obj, true
}

// Equal reports whether v and other hold the same tree. Object key order is
// not significant; list order is. Integers and floats compare numerically.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		if v.isInt && other.isInt {
			return v.i == other.i
		}

		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}

		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	default:
		return false
	}
}

// String renders v as compact JSON-like text for logs and error messages.
func (v Value) String() string {
	var sb strings.Builder

	v.render(&sb)

	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if v.isInt {
			sb.WriteString(strconv.FormatInt(v.i, 10))
		} else {
			sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindList:
		sb.WriteByte('[')

		for i, item := range v.list {
			if i > 0 {
				sb.WriteByte(',')
			}

			item.render(sb)
		}

		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')

		for i, key := range v.obj.keys {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(strconv.Quote(key))
			sb.WriteByte(':')
			v.obj.values[key].render(sb)
		}

		sb.WriteByte('}')
	}
}

// Scalar renders a Bool, Number or String without quoting. It is used when a
// scalar has to be read back as text, e.g. a numeric config value for a
// string field.
func (v Value) Scalar() (string, bool) {
	switch v.kind {
	case KindBool, KindNumber:
		return v.String(), true
	case KindString:
		return v.s, true
	default:
		return "", false
	}
}
