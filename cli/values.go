package cli

import (
	"github.com/0xalexb/hjarta-flagconf/value"
)

// Values holds what the command line supplied. A field is present only when
// its flag or positional tokens were given.
type Values struct {
	// NoConfig disables every configuration source.
	NoConfig bool
	// ConfigFile is an explicit configuration file path; empty means discover.
	ConfigFile string
	// RawConfig is inline configuration text, valid when HasRawConfig is set.
	RawConfig    string
	HasRawConfig bool
	// Leftover holds trailing tokens no positional field consumed.
	Leftover []string

	fields map[string]value.Value
}

// NewValues returns an empty set of values.
func NewValues() *Values {
	return &Values{fields: make(map[string]value.Value)}
}

// Field returns the value supplied for the field with the given key.
func (v *Values) Field(key string) (value.Value, bool) {
	if v == nil || v.fields == nil {
		return value.Null(), false
	}

	got, ok := v.fields[key]

	return got, ok
}

// Set records a supplied value for key.
func (v *Values) Set(key string, val value.Value) {
	if v.fields == nil {
		v.fields = make(map[string]value.Value)
	}

	v.fields[key] = val
}

// Len returns the number of supplied fields.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}

	return len(v.fields)
}
