// Command flagconf-demo resolves a sample schema from its arguments and the
// nearest config.{yaml,json,toml} file, then prints the result as YAML.
//
//	flagconf-demo -p 9000 --extend-list z build test
//	flagconf-demo --no-config
//	flagconf-demo --config '{"port": 9000}'
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flagconf "github.com/0xalexb/hjarta-flagconf"
	"github.com/0xalexb/hjarta-flagconf/cli"
	"github.com/0xalexb/hjarta-flagconf/schema"
	"github.com/0xalexb/hjarta-flagconf/value"

	"github.com/goccy/go-yaml"
)

func main() {
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil && !errors.Is(err, cli.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	os.Exit(flagconf.ExitCode(err))
}

func demoSchema() schema.Schema {
	return schema.Schema{
		Fields: []schema.Field{
			{Key: "port", Short: "p", Type: schema.Int, Default: 8080, Help: "Port to listen on"},
			{Key: "debug", Short: "d", Kind: schema.Boolean, Help: "Enable debug output"},
			{Key: "database_url", Availability: schema.ConfigOnly},
			{Key: "special_secret", Availability: schema.ConfigOnly},
			{Key: "extra_settings", Kind: schema.Struct, Availability: schema.ConfigOnly},
			{Key: "extend_list", Kind: schema.List, Help: "Appended to the configured list"},
			{Key: "overwrite_list", Kind: schema.List, MultiValue: schema.Overwrite, Help: "Replaces the configured list"},
			{Key: "commands", Kind: schema.List, Availability: schema.CliOnly, Positional: true},
		},
	}
}

func run(stdout, stderr io.Writer, args []string, opts ...flagconf.Option) error {
	opts = append([]flagconf.Option{
		flagconf.WithProgramName("flagconf-demo"),
		flagconf.WithStdout(stdout),
		flagconf.WithStderr(stderr),
		flagconf.WithLogLevel("warn"),
		flagconf.WithLogFormat("text"),
	}, opts...)

	resolved, report, err := flagconf.Resolve(demoSchema(), args, opts...)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(toMapSlice(resolved.Tree()))
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	fmt.Fprintln(stdout, "Final config:")
	fmt.Fprint(stdout, string(out))

	if report.HasConfig() {
		fmt.Fprintln(stdout, "Loaded config from:", report.UsedPath)
	} else {
		fmt.Fprintln(stdout, "No config file used")
	}

	if leftover := resolved.Args(); len(leftover) > 0 {
		fmt.Fprintln(stdout, "Leftover arguments:", leftover)
	}

	return nil
}

// toMapSlice converts v into values goccy/go-yaml renders in key order.
func toMapSlice(v value.Value) any {
	switch v.Kind() {
	case value.KindObject:
		obj, _ := v.AsObject()
		out := make(yaml.MapSlice, 0, obj.Len())

		obj.Range(func(key string, item value.Value) bool {
			out = append(out, yaml.MapItem{Key: key, Value: toMapSlice(item)})

			return true
		})

		return out
	case value.KindList:
		items, _ := v.AsList()
		out := make([]any, len(items))

		for i, item := range items {
			out[i] = toMapSlice(item)
		}

		return out
	default:
		return v.Native()
	}
}
