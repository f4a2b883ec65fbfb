package helpers

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger writing to w. The level starts at Warn and
// each verbosity step lowers it by one slog level (Info, Debug, trace).
func NewLogger(w io.Writer, verbosity int, callerTrace bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: callerTrace,
		Level:     slog.LevelWarn - slog.Level(verbosity*4),
	}))
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
