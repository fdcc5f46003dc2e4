// Package cli turns a schema into a pflag.FlagSet and parses command-line
// arguments into per-field optional values.
//
// Besides one flag per command-line field, every FlagSet carries the meta
// flags --no-config, --config-file and, unless disabled, --config. Boolean
// fields are presence flags: an absent flag is "not supplied" rather than
// false, so a configuration file can still turn the setting on. List flags
// repeat (--tag a --tag b). Struct fields take inline JSON, YAML or TOML.
// Trailing tokens fill positional fields in schema order; tokens left over
// are kept in Values.Leftover.
//
// Parse failures are returned as *ExitError carrying the exit status a
// program should use.
package cli
