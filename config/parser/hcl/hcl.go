// Package hcl provides an HCL parser implementation for the config package.
//
// Documents are parsed with the native HCL syntax and evaluated without
// variables or functions, so every expression must be a literal. Top-level
// attributes and blocks keep their document order:
//
//	port = 8080
//
//	database {
//	  host = "localhost"
//	}
//
//	server "edge" {
//	  weight = 2
//	}
//
// decodes to {port: 8080, database: {host: localhost}, server: {edge: {weight: 2}}}.
// Blocks of the same type with different labels are merged; repeating an
// unlabeled block is an error.
package hcl

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const documentName = "config.hcl"

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrDuplicateBlock is returned when an unlabeled block appears twice or
	// clashes with an attribute of the same name.
	ErrDuplicateBlock = errors.New("duplicate block")
	// ErrUnsupportedValue is returned for unknown values or types without a
	// structured equivalent.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Parser implements config.Parser interface for HCL data.
type Parser struct{}

// NewParser creates a new HCL parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes an HCL document into a structured object.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), ErrEmptyData
	}

	file, diags := hclsyntax.ParseConfig(data, documentName, hcl.InitialPos)
	if diags.HasErrors() {
		return value.Null(), fmt.Errorf("unmarshal error: %w", diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return value.Null(), fmt.Errorf("unmarshal error: %w: body type %T", ErrUnsupportedValue, file.Body)
	}

	return convertBody(body)
}

type bodyItem struct {
	offset int
	attr   *hclsyntax.Attribute
	block  *hclsyntax.Block
}

func convertBody(body *hclsyntax.Body) (value.Value, error) {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))

	for _, attr := range body.Attributes {
		items = append(items, bodyItem{offset: attr.SrcRange.Start.Byte, attr: attr})
	}

	for _, block := range body.Blocks {
		items = append(items, bodyItem{offset: block.TypeRange.Start.Byte, block: block})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].offset < items[j].offset
	})

	obj := value.NewObject()

	for _, item := range items {
		if item.attr != nil {
			evaluated, diags := item.attr.Expr.Value(nil)
			if diags.HasErrors() {
				return value.Null(), fmt.Errorf("evaluating %q: %w", item.attr.Name, diags)
			}

			converted, err := fromCty(evaluated)
			if err != nil {
				return value.Null(), fmt.Errorf("in attribute %q: %w", item.attr.Name, err)
			}

			obj.Set(item.attr.Name, converted)

			continue
		}

		err := addBlock(obj, item.block)
		if err != nil {
			return value.Null(), err
		}
	}

	return value.FromObject(obj), nil
}

func addBlock(obj *value.Object, block *hclsyntax.Block) error {
	inner, err := convertBody(block.Body)
	if err != nil {
		return fmt.Errorf("in block %q: %w", block.Type, err)
	}

	for i := len(block.Labels) - 1; i >= 0; i-- {
		wrapped := value.NewObject()
		wrapped.Set(block.Labels[i], inner)
		inner = value.FromObject(wrapped)
	}

	existing, found := obj.Get(block.Type)
	if !found {
		obj.Set(block.Type, inner)

		return nil
	}

	_, existingIsObject := existing.AsObject()
	if len(block.Labels) == 0 || !existingIsObject {
		return fmt.Errorf("%w: %q", ErrDuplicateBlock, block.Type)
	}

	obj.Set(block.Type, value.Merge(existing, inner))

	return nil
}

func fromCty(v cty.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Null(), nil
	}

	if !v.IsKnown() {
		return value.Null(), fmt.Errorf("%w: unknown value", ErrUnsupportedValue)
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return value.String(v.AsString()), nil
	case ty == cty.Bool:
		return value.Bool(v.True()), nil
	case ty == cty.Number:
		return fromNumber(v.AsBigFloat()), nil
	case ty.IsListType(), ty.IsTupleType(), ty.IsSetType():
		items := make([]value.Value, 0, v.LengthInt())

		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()

			converted, err := fromCty(elem)
			if err != nil {
				return value.Null(), err
			}

			items = append(items, converted)
		}

		return value.List(items...), nil
	case ty.IsObjectType(), ty.IsMapType():
		obj := value.NewObject()

		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()

			converted, err := fromCty(elem)
			if err != nil {
				return value.Null(), fmt.Errorf("in key %q: %w", key.AsString(), err)
			}

			obj.Set(key.AsString(), converted)
		}

		return value.FromObject(obj), nil
	default:
		return value.Null(), fmt.Errorf("%w: %s", ErrUnsupportedValue, ty.FriendlyName())
	}
}

func fromNumber(bf *big.Float) value.Value {
	if bf.IsInt() {
		if i, accuracy := bf.Int64(); accuracy == big.Exact {
			return value.Int(i)
		}
	}

	f, _ := bf.Float64()

	return value.Float(f)
}
