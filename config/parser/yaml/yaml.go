package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a structured value. A document holding only
// comments decodes to Null.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), ErrEmptyData
	}

	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return value.Null(), fmt.Errorf("unmarshal error: %w", err)
	}

	return toValue(decoded)
}

// toValue converts goccy/go-yaml output, where mappings arrive as MapSlice,
// into a value tree.
func toValue(decoded any) (value.Value, error) {
	switch typed := decoded.(type) {
	case yaml.MapSlice:
		obj := value.NewObject()

		for _, item := range typed {
			key := fmt.Sprint(item.Key)

			converted, err := toValue(item.Value)
			if err != nil {
				return value.Null(), fmt.Errorf("key %q: %w", key, err)
			}

			obj.Set(key, converted)
		}

		return value.FromObject(obj), nil
	case []any:
		items := make([]value.Value, len(typed))

		for i, item := range typed {
			converted, err := toValue(item)
			if err != nil {
				return value.Null(), fmt.Errorf("index %d: %w", i, err)
			}

			items[i] = converted
		}

		return value.List(items...), nil
	default:
		converted, err := value.FromNative(decoded)
		if err != nil {
			return value.Null(), fmt.Errorf("converting yaml value: %w", err)
		}

		return converted, nil
	}
}
