// Package logging builds the *slog.Logger used across the decode pipeline
// and CLI. The library itself only ever logs at Debug (parse/decode detail)
// and Warn (recoverable anomalies); Info/Error output is the CLI's to make.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

// Logger builds a *slog.Logger writing to w, either as human-readable text
// or JSON, at the given minimum level.
func Logger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{Handler: h})
}

// RotatingFileLogger is Logger's file-backed counterpart: writes roll over
// via lumberjack once maxSizeMB is reached, keeping maxBackups old files.
func RotatingFileLogger(path string, maxSizeMB, maxBackups int, json bool, level slog.Level) *slog.Logger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	return Logger(sink, json, level)
}

// AppendCtx attaches a slog.Attr group to ctx; a Logger built via this
// package includes it on every record logged against that context.
func AppendCtx(ctx context.Context, attr slog.Attr) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	return context.WithValue(ctx, ctxKey{}, append(existing, attr))
}

// ctxHandler injects attrs stashed by AppendCtx into every record.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
