// SPDX-License-Identifier: MIT
// Package logging builds the slog loggers used by the command-line front end.
// Algorithm packages never log; only internal/app and cmd do.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel and ErrUnknownFormat report unparseable settings.
var (
	ErrUnknownLevel  = errors.New("logging: unknown level")
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New returns a logger writing to w: CompactHandler for "text" (or ""),
// slog's JSON handler for "json".
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(NewCompactHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(NewCompactHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
