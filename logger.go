package lite

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes lite's diagnostics to l. lite is silent until it is
// called; nil silences it again. It may be called from any goroutine.
//
// What is logged:
//   - Debug: every NewCanvas and NewOverlay with its size, and in the
//     sketch package each shape drawn and each overlay group written.
//   - Info: present/term starting to show a canvas.
//   - Warn: drawing on, or writing, an Overlay after its Write.
//
//	lite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. The sketch and present
// packages log through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
