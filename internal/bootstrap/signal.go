package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext is cancelled on SIGINT or SIGTERM. The signal is recorded
// through audit before cancellation.
func SignalContext(parent context.Context, audit AuditLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-quit:
			audit.Log(ctx, AuditLog{
				Action:  "SESSION_INTERRUPTED",
				Message: "Session is shutting down",
				Meta:    map[string]any{"signal": sig.String()},
			})
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}
