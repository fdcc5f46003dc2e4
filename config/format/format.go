// Package format maps configuration file extensions to serialization formats.
package format

import (
	"path/filepath"
	"strings"
)

// Format is a configuration serialization format.
type Format string

// Known formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
	HCL  Format = "hcl"
)

// DefaultTags are the extension tags recognized when a host declares none.
//
//nolint:gochecknoglobals // read-only default.
var DefaultTags = []string{"yaml", "json", "toml"}

// RawTrialOrder is the order in which formats are tried for text without an
// extension. JSON goes first because its grammar is the strictest.
//
//nolint:gochecknoglobals // read-only default.
var RawTrialOrder = []Format{JSON, YAML, TOML}

// String returns the format tag.
func (f Format) String() string {
	return string(f)
}

// Parse maps an extension tag to its format. "yml" is accepted as YAML.
func Parse(tag string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), ".")) {
	case "yaml", "yml":
		return YAML, true
	case "json":
		return JSON, true
	case "toml":
		return TOML, true
	case "hcl":
		return HCL, true
	default:
		return "", false
	}
}

// Detect returns the format of path when its lower-cased extension equals one
// of the recognized tags. Tags are compared in order; at most one can match.
func Detect(path string, tags []string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", false
	}

	for _, tag := range tags {
		if strings.ToLower(strings.TrimSpace(tag)) != ext {
			continue
		}

		return Parse(tag)
	}

	return "", false
}

// Recognizes reports whether any of tags maps to f.
func Recognizes(tags []string, f Format) bool {
	for _, tag := range tags {
		if parsed, ok := Parse(tag); ok && parsed == f {
			return true
		}
	}

	return false
}
