package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

/*
Setup installs the default logger shared by the website and the image
optimizer: JSON on stderr, tagged with the application name and version.
*/
func Setup(level, appName, version string) {
	slog.SetDefault(NewLogger(os.Stderr, level, appName, version))
}

func NewLogger(w io.Writer, level, appName, version string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	return slog.New(h).With(
		slog.String("app", appName),
		slog.String("version", version),
	)
}

// ParseLevel falls back to info for unknown levels.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
