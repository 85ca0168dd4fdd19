package logger

import (
	"io"
	"log/slog"
	"os"
)

const service = "food-ordering"

// New returns a JSON logger at Info for production and a text logger at Debug for development.
func New(mode string) *slog.Logger {
	return newWithWriter(os.Stdout, mode)
}

func newWithWriter(w io.Writer, mode string) *slog.Logger {
	hostname, _ := os.Hostname()

	var h slog.Handler
	if mode == "development" {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(h).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}
