// Package observe provides ready-made observers for contained guard
// failures. Observers only ever see failures the guard has already caught;
// nothing here can weaken the never-propagate guarantee.
package observe

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/scope_ive_go/scope"
)

// NewZapObserver returns an observer that logs each contained failure as a
// structured warning. The guard swallows observer panics, so a logger that
// fails mid-unwind cannot break the exiting scope.
func NewZapObserver(logger *zap.Logger) scope.Observer {
	return scope.ObserverFunc(func(f scope.Failure) {
		logger.Warn("deferred task failed during scope exit",
			zap.String("guardId", f.GuardId),
			zap.String("site", f.Site.String()),
			zap.Duration("elapsed", f.Span.Duration()),
			zap.Error(f.Err),
		)
	})
}
