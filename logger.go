package kidpaint

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/kidbox/kidpaint/archive"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called from the parent shell while the session runs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for kidpaint and its sub-packages.
// By default kidpaint produces no log output: the kiosk screen must
// never show an error, so logging exists for the parent shell only.
// Pass nil to disable logging (restore the silent default).
//
// Log levels used by kidpaint:
//   - [slog.LevelDebug]: autosave/archive lifecycle events
//   - [slog.LevelWarn]: swallowed persistence failures (retried later)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to the storage layer, which cannot import this package.
	archive.SetLogger(l)
}

// Logger returns the current logger used by kidpaint. The recall
// sub-package calls this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
