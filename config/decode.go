package config

import (
	"fmt"

	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read when decoding into Go structs. Only the first
// comma-separated element (the key) matters for decoding.
const TagName = "conf"

// Decode copies v into target, which must be a non-nil pointer. Struct fields
// are matched by their `conf` tag, falling back to a case-insensitive match on
// the field name. Scalars are converted weakly, so a float 8080 or a string
// "8080" both fill an int field.
func Decode(v value.Value, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(v.Native())
	if err != nil {
		return fmt.Errorf("decoding %s: %w", v.Kind(), err)
	}

	return nil
}
