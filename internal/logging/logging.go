// Package logging installs the process-wide slog handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init makes a text handler writing to w at the given level the
// default logger. An unknown level falls back to INFO and is reported
// as a warning once the logger is up.
func Init(w io.Writer, level string) {
	lvl, err := ParseLevel(level)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	if err != nil {
		slog.Warn(err.Error())
	}
}

// InitFile logs to both w and the file at path, appending.
// The returned closer releases the file.
func InitFile(w io.Writer, path, level string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	Init(io.MultiWriter(w, f), level)
	return f, nil
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR, in any case, to a
// slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", level)
}
