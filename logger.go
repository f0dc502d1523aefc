package paper

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that a
// background worker may log while the event loop replaces the logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for paper and all its sub-packages.
// By default, paper produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by paper:
//   - [slog.LevelDebug]: per-pass diagnostics (truncated cuts, annotation
//     fixups, refresh calls)
//   - [slog.LevelInfo]: lifecycle events (display opened, event loop start/stop)
//   - [slog.LevelWarn]: non-fatal issues (late worker results, dropped input)
//
// Example:
//
//	paper.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by paper.
// Sub-packages (ui, display, app) call this to share one configuration
// without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
