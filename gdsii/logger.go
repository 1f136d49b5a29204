package gdsii

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the gdsii package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the gdsii package's logger. It is safe to call while
// streams are being decoded or encoded; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
