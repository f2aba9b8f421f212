package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shuldan/appcore/pkg/contracts"
)

type slogLogger struct {
	*slog.Logger
}

// New builds a contracts.Logger backed by log/slog. Text output with optional
// terminal colors by default, JSON via WithJSON.
func New(opts ...Option) contracts.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		writer: os.Stdout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
			Level:       cfg.level,
			AddSource:   cfg.addSource,
			ReplaceAttr: replaceLevelNames,
		})
	} else {
		colored := cfg.wantColor && isTerminal(cfg.writer)
		handler = newTextHandler(cfg.writer, colored, cfg.level)
	}

	return &slogLogger{Logger: slog.New(handler)}
}

func (l *slogLogger) Trace(msg string, args ...any) {
	l.LogAttrs(context.Background(), levelTrace, msg, toAttrs(args)...)
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, toAttrs(args)...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelInfo, msg, toAttrs(args)...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelWarn, msg, toAttrs(args)...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelError, msg, toAttrs(args)...)
}

func (l *slogLogger) Critical(msg string, args ...any) {
	l.LogAttrs(context.Background(), levelCritical, msg, toAttrs(args)...)
}

func (l *slogLogger) With(args ...any) contracts.Logger {
	return &slogLogger{Logger: l.Logger.With(args...)}
}

func toAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			attrs = append(attrs, slog.Any("MISSING_VALUE", args[i]))
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("NON_STRING_KEY_%T", args[i])
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
	}
	return attrs
}

func replaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		return slog.String(slog.LevelKey, levelName(level))
	}
	return a
}
