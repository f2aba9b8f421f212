package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type textHandler struct {
	writer  io.Writer
	attrs   []slog.Attr
	colored bool
	level   slog.Level
}

func newTextHandler(writer io.Writer, colored bool, level slog.Level) slog.Handler {
	return &textHandler{
		writer:  writer,
		colored: colored,
		level:   level,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	label := levelName(r.Level)
	if h.colored {
		label = colorize(label, r.Level)
	}

	_, _ = fmt.Fprintf(h.writer, "%s %s", label, r.Message)

	for _, a := range h.attrs {
		h.writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(a)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *textHandler) writeAttr(a slog.Attr) {
	if a.Key == "" || a.Equal(slog.Attr{}) {
		return
	}
	_, _ = fmt.Fprintf(h.writer, " %s=%q", a.Key, a.Value)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &textHandler{
		writer:  h.writer,
		attrs:   merged,
		colored: h.colored,
		level:   h.level,
	}
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened: this handler renders key=value pairs only.
	return h
}

func colorize(label string, level slog.Level) string {
	const (
		reset  = "\033[0m"
		cyan   = "\033[36m"
		blue   = "\033[34m"
		green  = "\033[32m"
		yellow = "\033[33m"
		red    = "\033[31m"
		redBg  = "\033[41m\033[37m"
	)

	switch {
	case level <= levelTrace:
		return cyan + label + reset
	case level < slog.LevelInfo:
		return blue + label + reset
	case level < slog.LevelWarn:
		return green + label + reset
	case level < slog.LevelError:
		return yellow + label + reset
	case level >= levelCritical:
		return redBg + label + reset
	default:
		return red + label + reset
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
