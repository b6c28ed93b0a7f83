package voronoi

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used by this package and the surfaces under
// internal/. By default nothing is logged. Pass nil to go quiet again.
//
// Levels used:
//   - Debug: resource lifecycle, site regeneration
//   - Warn: resource creation / presentation failures
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
