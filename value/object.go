package value

// Object is an ordered mapping of unique string keys to values.
// A nil *Object behaves as an empty object for read operations.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}

	v, ok := o.values[key]

	return v, ok
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}

	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Range calls fn for each entry in order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}

	for _, key := range o.keys {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	clone := NewObject()

	o.Range(func(key string, v Value) bool {
		clone.Set(key, v.clone())

		return true
	})

	return clone
}

// Equal reports whether both objects hold the same keys and values,
// regardless of key order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}

	equal := true

	o.Range(func(key string, v Value) bool {
		ov, ok := other.Get(key)
		if !ok || !v.Equal(ov) {
			equal = false
		}

		return equal
	})

	return equal
}

func (v Value) clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.clone()
		}

		return Value{kind: KindList, list: items}
	case KindObject:
		return FromObject(v.obj.Clone())
	default:
		return v
	}
}
