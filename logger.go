package fx

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Its handler reports every level as disabled,
// so log calls made while it is active never format their arguments.
var silent = slog.New(slog.DiscardHandler)

var activeLogger atomic.Pointer[slog.Logger]

// SetLogger routes fx diagnostics to l. A nil l silences them again, which
// is also the initial state. It may be called while renders are running.
//
// fx logs registrations and renders at [slog.LevelDebug] and parameters that
// degrade the output, such as a non-positive pattern width, at
// [slog.LevelWarn]:
//
//	fx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	activeLogger.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := activeLogger.Load(); l != nil {
		return l
	}
	return silent
}
