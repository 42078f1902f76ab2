package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownSignals are the signals that stop the server.
var ShutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignal returns a context canceled on the first shutdown signal.
// The returned stop function releases the signal handler.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, ShutdownSignals...)
}
