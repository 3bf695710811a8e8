package ttfslots

import "context"
import "log/slog"
import "sync/atomic"

// Discards everything. Enabled returns false so records are never built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used during startup and shutdown. By default nothing
// is logged. Passing nil restores the silent default.
//
// Levels used:
//  - [slog.LevelDebug]: each texture uploaded.
//  - [slog.LevelInfo]: startup and shutdown summaries.
//  - [slog.LevelWarn]: errors while releasing resources.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
