package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the process-wide slog handler. Diagnostics go to stderr so
// they never mix with command output on stdout.
func Setup(level string, format string) {
	SetupWriter(os.Stderr, level, format)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string, format string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
