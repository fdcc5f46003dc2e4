package value

import "strings"

// PathSeparator separates nested keys in a path.
const PathSeparator = ":"

// SplitPath splits a colon-separated path into its keys. The empty path has
// no keys.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, PathSeparator)
}

// Lookup navigates v along a colon-separated path. The empty path returns v
// itself. Lookup fails when a key is missing or an intermediate value is not
// an object.
func Lookup(v Value, path string) (Value, bool) {
	current := v

	for _, key := range SplitPath(path) {
		obj, ok := current.AsObject()
		if !ok {
			return Null(), false
		}

		current, ok = obj.Get(key)
		if !ok {
			return Null(), false
		}
	}

	return current, true
}

// Nest builds the object tree that places leaf at path, e.g. "a:b" with 1
// yields {a: {b: 1}}. The empty path returns leaf.
func Nest(path string, leaf Value) Value {
	keys := SplitPath(path)
	current := leaf

	for i := len(keys) - 1; i >= 0; i-- {
		obj := NewObject()
		obj.Set(keys[i], current)
		current = FromObject(obj)
	}

	return current
}
