package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

func init() {
	// Packages log during tests without calling Init; default to the same
	// handler so Log is never nil.
	if Log == nil {
		Init()
	}
}
