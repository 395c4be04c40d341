package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultSignals are the signals that cancel a running command
var DefaultSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP}

// Context returns a context that is cancelled when one of signals arrives or
// when timeout elapses. A zero timeout means no deadline.
func Context(parent context.Context, timeout time.Duration, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = DefaultSignals
	}

	sigCtx, stop := signal.NotifyContext(parent, signals...)
	if timeout <= 0 {
		return sigCtx, stop
	}

	ctx, cancel := context.WithTimeout(sigCtx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
