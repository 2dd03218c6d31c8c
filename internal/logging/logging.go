// Package logging builds the slog logger shared by framebench commands.
// Diagnostics go to stderr so that stdout stays reserved for reports and
// exports that may be piped.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options control logger construction.
type Options struct {
	Verbose bool      // debug level instead of warn
	JSON    bool      // JSON records instead of key=value text
	Output  io.Writer // defaults to os.Stderr
}

// New returns a logger for opts.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(out, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(out, handlerOpts))
}
