package resolve

import (
	"github.com/0xalexb/hjarta-flagconf/config"
	"github.com/0xalexb/hjarta-flagconf/schema"
	"github.com/0xalexb/hjarta-flagconf/value"
)

// Resolved is the final configuration: exactly one value per schema field,
// in schema order.
type Resolved struct {
	keys    []string
	values  map[string]value.Value
	sources map[string]Source
	args    []string
}

func newResolved(fields []schema.Field) *Resolved {
	return &Resolved{
		keys:    make([]string, 0, len(fields)),
		values:  make(map[string]value.Value, len(fields)),
		sources: make(map[string]Source, len(fields)),
	}
}

func (r *Resolved) set(key string, v value.Value, source Source) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}

	r.values[key] = v
	r.sources[key] = source
}

// Keys returns the field keys in schema order.
func (r *Resolved) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)

	return out
}

// Get returns the value resolved for key.
func (r *Resolved) Get(key string) (value.Value, bool) {
	v, ok := r.values[key]

	return v, ok
}

// Source returns where the value for key came from, or "" for unknown keys.
func (r *Resolved) Source(key string) Source {
	return r.sources[key]
}

// String returns the string value of key, or "" when key is not a string field.
func (r *Resolved) String(key string) string {
	s, _ := r.values[key].AsString()

	return s
}

// Int returns the integer value of key, or 0.
func (r *Resolved) Int(key string) int64 {
	i, _ := r.values[key].AsInt()

	return i
}

// Float returns the numeric value of key, or 0.
func (r *Resolved) Float(key string) float64 {
	f, _ := r.values[key].AsFloat()

	return f
}

// Bool returns the boolean value of key, or false.
func (r *Resolved) Bool(key string) bool {
	b, _ := r.values[key].AsBool()

	return b
}

// Strings returns the elements of a list field rendered as text.
func (r *Resolved) Strings(key string) []string {
	items, _ := r.values[key].AsList()
	out := make([]string, 0, len(items))

	for _, item := range items {
		s, _ := item.Scalar()
		out = append(out, s)
	}

	return out
}

// Args returns trailing command-line tokens no positional field consumed.
func (r *Resolved) Args() []string {
	out := make([]string, len(r.args))
	copy(out, r.args)

	return out
}

// Tree returns the resolved values as one object, with ":" keys expanded
// into nested objects.
func (r *Resolved) Tree() value.Value {
	root := value.NewObject()

	for _, key := range r.keys {
		insert(root, value.SplitPath(key), r.values[key])
	}

	return value.FromObject(root)
}

// Map returns Tree as plain Go values.
func (r *Resolved) Map() map[string]any {
	out, _ := r.Tree().Native().(map[string]any)

	return out
}

// Decode copies the resolved values into target, matching `conf` struct tags.
func (r *Resolved) Decode(target any) error {
	return config.Decode(r.Tree(), target)
}

func insert(root *value.Object, keys []string, v value.Value) {
	if len(keys) == 1 {
		root.Set(keys[0], v)

		return
	}

	existing, _ := root.Get(keys[0])

	child, ok := existing.AsObject()
	if !ok {
		child = value.NewObject()
	} else {
		child = child.Clone()
	}

	insert(child, keys[1:], v)
	root.Set(keys[0], value.FromObject(child))
}
