// Package logging builds the structured logger used by the pick command.
//
// Diagnostics go to stderr so that stdout only ever carries query results.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Debug records are emitted only
// when debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
