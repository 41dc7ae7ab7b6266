// Package logging sets up the structured logger used by awgenc.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/net2share/awgenc/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel converts a settings level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// New returns a tint logger writing to w. Colour is enabled only when w is a
// terminal.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.DateTime,
	}))
}

// Setup opens the configured log file and returns a logger writing to it.
// If the file cannot be opened the logger falls back to stderr at warn level
// and the open error is returned alongside it.
func Setup(s config.LogSettings) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return New(os.Stderr, slog.LevelWarn), nopCloser{}, err
	}

	if s.File == "" {
		return New(os.Stderr, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.File), 0750); err != nil {
		return New(os.Stderr, slog.LevelWarn), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return New(os.Stderr, slog.LevelWarn), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, level), f, nil
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
