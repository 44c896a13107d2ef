package blackhole

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so formatting is skipped.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the renderer and the viewer.
// By default nothing is logged. Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// DebugLog logs a formatted debug line when Debug is enabled.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

var once sync.Once

// DebugLogOnce is DebugLog that fires only for the first call in the process.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Logger().Debug(fmt.Sprintf(format, args...))
	})
}
