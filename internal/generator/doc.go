// Package generator is the concurrency boundary between many concurrent
// callers and the models that compute embeddings. All loaded models are
// owned by one worker goroutine; callers reach it only through a bounded
// request channel and get their result back on a per-request reply channel.
// The package is structured into small files by concern:
//
//   - generator.go: the Generator handle, constructor handshake, Generate,
//     Close, and status accessors.
//   - worker.go: the worker goroutine (load, serve, terminate).
//   - registry.go: one-time registry construction from model configs.
//   - config.go: GeneratorConfig and package defaults.
//   - errors.go: error types and helpers (IsModelNotFound, IsQueueFull, ...).
//   - metrics.go: Prometheus instrumentation.
//
// Guarantees: requests are served strictly in arrival order; at most one
// inference runs at any instant; every accepted request receives exactly
// one reply. Enqueueing is fallible: when the queue stays full past the
// configured wait, callers get a queue-full error instead of blocking
// forever.
package generator
