// Package logging builds the slog.Logger that carries resolution tracing and
// recoverable configuration diagnostics.
//
// Output is JSON by default, or logfmt-style text with Format "text". Levels
// are debug, info, warn (or warning) and error, case-insensitive; anything
// else means info. Diagnostics are written at WARN, so the default level
// shows them and hides debug tracing.
package logging
