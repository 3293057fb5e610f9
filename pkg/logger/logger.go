package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger tagged with the service name and host.
func New(service, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) *slog.Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}

// ParseLevel maps LOG_LEVEL values (DEBUG, INFO, WARNING, ERROR) to slog
// levels. Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
