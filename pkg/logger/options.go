package logger

import (
	"io"
	"log/slog"
)

type Option func(*config)

type config struct {
	level     slog.Level
	json      bool
	addSource bool
	writer    io.Writer
	wantColor bool
}

func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

func WithJSON() Option {
	return func(c *config) {
		c.json = true
	}
}

func WithSource() Option {
	return func(c *config) {
		c.addSource = true
	}
}

func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.writer = w
	}
}

func WithColor() Option {
	return func(c *config) {
		c.wantColor = true
	}
}
