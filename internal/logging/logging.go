// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gloovup/portal/internal/config"
	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger for cfg. Logs go to cfg.File when set, otherwise to
// stderr when stdout carries protocol traffic and to stdout when it doesn't.
// The returned closer releases the log file, if any.
func New(cfg config.LogConfig, stdoutReserved bool) (*slog.Logger, io.Closer, error) {
	var (
		writer io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if stdoutReserved {
		writer = os.Stderr
	}
	if cfg.File != "" {
		fw, err := NewFileWriter(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = fw, fw
	}
	return slog.New(NewHandler(writer, cfg)), closer, nil
}

// NewHandler returns a JSON handler when cfg asks for json and a tint
// handler otherwise. Color is used only when w is a terminal.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level := ParseLevel(cfg.Level)
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
