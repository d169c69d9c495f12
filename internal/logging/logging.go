// Package logging installs the process-wide slog default.
package logging

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default logger: human-readable text on stdout plus
// JSON records in a size-rotated file. An empty file path disables the
// file sink.
func Setup(level, file string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stdout, opts)}
	if file != "" {
		logFile := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // megabytes
			MaxBackups: 8,
			MaxAge:     30, // days
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(logFile, opts))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

func parseLevel(s string) slog.Level {
	switch s {
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
