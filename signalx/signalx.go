// Package signalx ties process signals to context cancellation.
package signalx

import (
	"context"
	"os"
	"os/signal"
)

// SignalExitCtx will set up a context that will be cancelled if any of the given signals are received, so running child processes are stopped.
// If a second signal is received, then [os.Exit] will be called with a non-zero exit code.
// The returned stop function releases the signal handler once the caller is done.
func SignalExitCtx(parent context.Context, signals ...os.Signal) (context.Context, func()) {
	if len(signals) == 0 {
		panic("no signals passed to SignalExitCtx")
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, signals...)
	go func() {
		select {
		case <-sigs:
		case <-done:
			return
		}
		cancel()
		select {
		case <-sigs:
			os.Exit(1)
		case <-done:
		}
	}()
	return ctx, func() {
		signal.Stop(sigs)
		close(done)
		cancel()
	}
}
