// Package json provides a JSON parser implementation for the config package.
//
// Objects keep their keys in document order and numbers keep their integer or
// floating point nature. Trailing data after the top-level value is rejected.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-flagconf/value"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrTrailingData is returned when more data follows the top-level value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Parser implements config.Parser interface for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes JSON data into a structured value.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), ErrEmptyData
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	decoded, err := decodeValue(decoder)
	if err != nil {
		return value.Null(), fmt.Errorf("unmarshal error: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return value.Null(), fmt.Errorf("unmarshal error: %w", ErrTrailingData)
	}

	return decoded, nil
}

func decodeValue(decoder *json.Decoder) (value.Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return value.Null(), fmt.Errorf("reading token: %w", err)
	}

	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeList(decoder)
		default:
			return value.Null(), fmt.Errorf("unexpected delimiter %q", typed)
		}
	case json.Number:
		return value.FromNative(typed)
	case string:
		return value.String(typed), nil
	case bool:
		return value.Bool(typed), nil
	case nil:
		return value.Null(), nil
	default:
		return value.Null(), fmt.Errorf("unexpected token %v", token)
	}
}

func decodeObject(decoder *json.Decoder) (value.Value, error) {
	obj := value.NewObject()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return value.Null(), fmt.Errorf("reading key: %w", err)
		}

		key, ok := token.(string)
		if !ok {
			return value.Null(), fmt.Errorf("unexpected key %v", token)
		}

		item, err := decodeValue(decoder)
		if err != nil {
			return value.Null(), fmt.Errorf("key %q: %w", key, err)
		}

		obj.Set(key, item)
	}

	_, err := decoder.Token()
	if err != nil {
		return value.Null(), fmt.Errorf("closing object: %w", err)
	}

	return value.FromObject(obj), nil
}

func decodeList(decoder *json.Decoder) (value.Value, error) {
	var items []value.Value

	for decoder.More() {
		item, err := decodeValue(decoder)
		if err != nil {
			return value.Null(), fmt.Errorf("index %d: %w", len(items), err)
		}

		items = append(items, item)
	}

	_, err := decoder.Token()
	if err != nil {
		return value.Null(), fmt.Errorf("closing list: %w", err)
	}

	return value.List(items...), nil
}
