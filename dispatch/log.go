package dispatch

import (
	"log/slog"
	"sync/atomic"
)

var theLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for skip warnings. A nil logger restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	theLogger.Store(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return theLog()
}

func theLog() *slog.Logger {
	if l := theLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
