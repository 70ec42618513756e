// Package logx holds the slog helpers shared by the library packages. Library
// code never logs unless the caller hands it a logger.
package logx

import (
	"context"
	"log/slog"
)

// OrDiscard returns logger, or a logger that drops every record when logger
// is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(noopHandler{})
	}
	return logger
}

type noopHandler struct{}

func (noopHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (noopHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n noopHandler) WithGroup(_ string) slog.Handler {
	return n
}
