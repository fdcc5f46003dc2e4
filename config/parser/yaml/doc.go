// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps so that the
// resulting value.Object keeps keys in document order. Anchors, aliases and
// merge keys are resolved by the underlying decoder.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data)
//
// Mapping keys that are not strings (e.g. `1: one`) are converted to their
// textual form.
package yaml
