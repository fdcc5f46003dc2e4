package resolve

import (
	"github.com/0xalexb/hjarta-flagconf/schema"
	"github.com/0xalexb/hjarta-flagconf/value"
)

// Source records where a resolved value came from.
type Source string

// Value sources.
const (
	SourceZero    Source = "zero"
	SourceDefault Source = "default"
	SourceConfig  Source = "config"
	SourceCLI     Source = "cli"
	// SourceMerged marks an extend list combining configured and CLI elements.
	SourceMerged Source = "merged"
)

// Input holds the candidate values for one field. Config must already be
// coerced to the field's kind.
type Input struct {
	CLI       value.Value
	HasCLI    bool
	Config    value.Value
	HasConfig bool
}

// ResolveField picks the value of field from in according to the field's
// availability and multi-value behavior. A field whose default does not fit
// its kind behaves as if it had none.
func ResolveField(field schema.Field, in Input) (value.Value, Source) {
	if !field.OnCLI() {
		in.CLI, in.HasCLI = value.Null(), false
	}

	if !field.InConfig() {
		in.Config, in.HasConfig = value.Null(), false
	}

	if field.Availability == schema.Internal {
		return field.Zero(), SourceZero
	}

	if field.Kind == schema.List && field.Availability == schema.CliAndConfig {
		return resolveList(field, in)
	}

	switch {
	case in.HasCLI:
		return in.CLI, SourceCLI
	case in.HasConfig:
		return in.Config, SourceConfig
	default:
		return fallback(field)
	}
}

func resolveList(field schema.Field, in Input) (value.Value, Source) {
	if field.MultiValue == schema.Overwrite && in.HasCLI && in.CLI.Len() > 0 {
		return in.CLI, SourceCLI
	}

	base, source := fallback(field)
	if in.HasConfig {
		base, source = in.Config, SourceConfig
	}

	if field.MultiValue == schema.Overwrite || !in.HasCLI || in.CLI.Len() == 0 {
		return base, source
	}

	baseItems, _ := base.AsList()
	cliItems, _ := in.CLI.AsList()

	if len(baseItems) == 0 {
		return in.CLI, SourceCLI
	}

	return value.List(append(baseItems, cliItems...)...), SourceMerged
}

func fallback(field schema.Field) (value.Value, Source) {
	def, ok, err := field.DefaultValue()
	if ok && err == nil {
		return def, SourceDefault
	}

	return field.Zero(), SourceZero
}
