// Package resolve combines command-line values and configuration sources into
// one resolved configuration.
//
// An Engine owns a validated schema. Each call to Resolve:
//
//  1. honors --no-config by skipping every configuration source;
//  2. loads the explicit --config-file, or discovers "<base>.<ext>" from the
//     working directory upward;
//  3. deep-merges inline --config text over the file contents;
//  4. resolves every schema field with ResolveField.
//
// Read and parse failures are recoverable: they are logged at WARN, collected
// in Report.Diagnostics, and resolution continues without that source.
// Ambiguous discovery is the only fatal error.
//
// Precedence per field:
//
//	cli_only             cli > default > zero
//	config_only          config > default > zero
//	cli_and_config       cli > config > default > zero
//	list, overwrite      cli (one element or more) > config > default > empty
//	list, extend         (config or default or empty) followed by cli elements
//	internal             zero
package resolve
