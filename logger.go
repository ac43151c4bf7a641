package ferric

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the library's logger.
// This must be called before any component operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

// LogObserver adapts lifecycle events onto a zap logger. Register it
// with Subscribe to trace construction, transfer, and destruction of
// every instrumented value.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an observer that writes one info line per event.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// OnLifecycleEvent implements Observer.
func (o *LogObserver) OnLifecycleEvent(e Event) {
	o.log.Info("lifecycle",
		zap.String("component", e.Component),
		zap.Stringer("event", e.Type),
		zap.String("detail", e.Detail))
}
