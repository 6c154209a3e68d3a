package multiview

import (
	"log/slog"

	"github.com/gogpu/multiview/internal/logging"
)

// SetLogger configures the logger for multiview and all its sub-packages.
// By default, multiview produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by multiview:
//   - [slog.LevelDebug]: graph mutations, texture allocations, per-frame execution
//   - [slog.LevelInfo]: lifecycle transitions, viewport assembly, surface setup
//   - [slog.LevelWarn]: slow backends, unbound overlay images
//
// Example:
//
//	multiview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by multiview.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
