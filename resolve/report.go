package resolve

import (
	"github.com/0xalexb/hjarta-flagconf/config/format"
)

// Report describes which configuration sources a resolution used.
type Report struct {
	// UsedPath is the configuration file that was loaded; empty when none was.
	UsedPath string
	// UsedFormat is the format UsedPath was decoded as.
	UsedFormat format.Format
	// RawFormat is the format inline --config text was decoded as.
	RawFormat format.Format
	// NoConfig is set when --no-config disabled every source.
	NoConfig bool
	// Diagnostics lists recoverable errors in the order they occurred.
	Diagnostics []error
}

// HasConfig reports whether a configuration file was loaded.
func (r *Report) HasConfig() bool {
	return r.UsedPath != ""
}
