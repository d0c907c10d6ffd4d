package httpapi

import "context"

// shutdownCtx is canceled when the daemon begins shutting down. Handlers
// derive per-request contexts from it so Generate calls parked behind the
// worker queue are abandoned instead of holding the drain open until their
// client disconnects.
var shutdownCtx = context.Background()

// SetBaseContext installs the process shutdown context. Passing nil restores
// Background, in which case requests end only with their client connection.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		shutdownCtx = context.Background()
		return
	}
	shutdownCtx = ctx
}

// joinContexts derives a context that ends as soon as either the client
// request or the daemon shutdown is done. The returned cancel releases the
// watcher goroutine and must be called when the handler returns.
func joinContexts(req, shutdown context.Context) (context.Context, context.CancelFunc) {
	joined, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		select {
		case <-req.Done():
		case <-shutdown.Done():
		}
	}()
	return joined, cancel
}
