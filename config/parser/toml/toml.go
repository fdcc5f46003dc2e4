// Package toml provides a TOML parser implementation for the config package.
//
// Decoding is delegated to github.com/pelletier/go-toml/v2. A second pass
// over the document with its unstable parser records the order keys appear
// in, so objects keep document order like the other formats. Date and time
// values become RFC 3339 strings.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document into a structured value. The result is
// always an object.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), ErrEmptyData
	}

	decoded := make(map[string]any)

	err := toml.Unmarshal(data, &decoded)
	if err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()

			return value.Null(), fmt.Errorf("unmarshal error at line %d column %d: %w", row, column, err)
		}

		return value.Null(), fmt.Errorf("unmarshal error: %w", err)
	}

	converted, err := keyOrder(data).build(decoded, nil)
	if err != nil {
		return value.Null(), fmt.Errorf("converting toml value: %w", err)
	}

	return converted, nil
}

// order maps a table path to its child keys in the order they were first
// seen. Array indexes are not part of the path, so every element of an array
// of tables shares one ordering.
type order map[string][]string

func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}

func (o order) add(path []string) {
	for i := range path {
		parent := pathKey(path[:i])
		if !slices.Contains(o[parent], path[i]) {
			o[parent] = append(o[parent], path[i])
		}
	}
}

// keyOrder walks the expressions of data. The document already decoded
// successfully, so parse errors cannot occur here; a partial order only
// moves unknown keys to the end.
func keyOrder(data []byte) order {
	seen := make(order)

	var (
		parser unstable.Parser
		table  []string
	)

	parser.Reset(data)

	for parser.NextExpression() {
		expr := parser.Expression()
		if expr == nil {
			continue
		}

		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyParts(expr)
			seen.add(table)
		case unstable.KeyValue:
			seen.keyValue(table, expr)
		default:
		}
	}

	return seen
}

func (o order) keyValue(table []string, kv *unstable.Node) {
	path := append(slices.Clone(table), keyParts(kv)...)
	o.add(path)
	o.nested(path, kv.Value())
}

// nested records keys of inline tables, including those inside arrays.
func (o order) nested(path []string, node *unstable.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case unstable.InlineTable:
		children := node.Children()
		for children.Next() {
			if child := children.Node(); child.Kind == unstable.KeyValue {
				o.keyValue(path, child)
			}
		}
	case unstable.Array:
		children := node.Children()
		for children.Next() {
			o.nested(path, children.Node())
		}
	default:
	}
}

func keyParts(node *unstable.Node) []string {
	var parts []string

	it := node.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}

	return parts
}

func (o order) build(in any, path []string) (value.Value, error) {
	switch typed := in.(type) {
	case map[string]any:
		obj := value.NewObject()

		for _, key := range o.sortedKeys(typed, path) {
			item, err := o.build(typed[key], append(slices.Clone(path), key))
			if err != nil {
				return value.Null(), err
			}

			obj.Set(key, item)
		}

		return value.FromObject(obj), nil
	case []any:
		items := make([]value.Value, len(typed))

		for i, elem := range typed {
			item, err := o.build(elem, path)
			if err != nil {
				return value.Null(), err
			}

			items[i] = item
		}

		return value.List(items...), nil
	default:
		return value.FromNative(in)
	}
}

// sortedKeys lists the keys of m in document order. Keys the walk did not
// record follow in lexical order.
func (o order) sortedKeys(m map[string]any, path []string) []string {
	keys := make([]string, 0, len(m))

	for _, key := range o[pathKey(path)] {
		if _, ok := m[key]; ok {
			keys = append(keys, key)
		}
	}

	var rest []string

	for key := range m {
		if !slices.Contains(keys, key) {
			rest = append(rest, key)
		}
	}

	slices.Sort(rest)

	return append(keys, rest...)
}
