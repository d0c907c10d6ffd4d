package generator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"embedd/pkg/types"
)

// request travels from a caller to the worker. The reply channel is
// buffered with capacity 1 so the worker can answer and move on even when
// the caller has abandoned its wait.
type request struct {
	model string
	texts []string
	reply chan result
}

type result struct {
	embeddings [][]float32
	err        error
}

// Generator is the caller-facing handle. It is cheap to share, safe for
// concurrent use, and holds no model state of its own; all mutable model
// state lives behind the worker goroutine.
type Generator struct {
	reqCh   chan request
	done    chan struct{}
	maxWait time.Duration
	log     *zerolog.Logger

	models []types.ModelInfo // immutable after construction

	mu     sync.RWMutex
	closed bool

	start time.Time
}

// New loads the given models and starts the worker. It returns once loading
// has fully succeeded or failed; on failure the error is a model loading
// error and no worker is left running.
func New(models []types.ModelConfig) (*Generator, error) {
	return NewWithConfig(GeneratorConfig{Models: models})
}

// NewWithConfig constructs a Generator from GeneratorConfig.
func NewWithConfig(cfg GeneratorConfig) (*Generator, error) {
	cfg = cfg.withDefaults()
	g := &Generator{
		reqCh:   make(chan request, cfg.QueueDepth),
		done:    make(chan struct{}),
		maxWait: cfg.MaxWait,
		log:     cfg.Logger,
		start:   time.Now(),
	}

	// One-shot handshake: the worker reports the outcome of the loading
	// phase before it begins serving.
	loaded := make(chan loadReport, 1)
	go g.run(cfg, loaded)

	rep := <-loaded
	if rep.err != nil {
		return nil, rep.err
	}
	g.models = rep.models
	return g, nil
}

// Generate embeds texts with the named model. It blocks the calling
// goroutine until the worker has replied, the context is done, or the queue
// stayed full past the configured wait. One vector is returned per input
// text, in input order.
func (g *Generator) Generate(ctx context.Context, texts []string, model string) ([][]float32, error) {
	reply := make(chan result, 1)
	if err := g.enqueue(ctx, request{model: model, texts: texts, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case res, ok := <-reply:
		if !ok {
			return nil, ErrInternal("channel closed unexpectedly")
		}
		return res.embeddings, res.err
	case <-ctx.Done():
		// The request stays queued; the worker will compute and discard
		// the unread reply.
		return nil, ctx.Err()
	}
}

// enqueue reserves a queue slot or fails with backpressure. The read lock
// is held across the send so Close cannot close the channel under us.
func (g *Generator) enqueue(ctx context.Context, req request) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.closed {
		return ErrInternal("generator closed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(g.maxWait)
	defer timer.Stop()
	select {
	case g.reqCh <- req:
		queueDepth.Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		rejectionsTotal.WithLabelValues("queue_full").Inc()
		return ErrQueueFull(req.model)
	}
}

// Close drops the sending side of the queue and waits for the worker to
// drain outstanding requests and release every loaded model. Subsequent
// Generate calls fail with an internal error. Close is idempotent.
func (g *Generator) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	close(g.reqCh)
	g.mu.Unlock()

	<-g.done
	return nil
}

// Models returns the loaded models in configuration order.
func (g *Generator) Models() []types.ModelInfo {
	out := make([]types.ModelInfo, len(g.models))
	copy(out, g.models)
	return out
}

// Ready reports whether the generator is accepting requests.
func (g *Generator) Ready() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return !g.closed
}

// Status returns a point-in-time view of the generator.
func (g *Generator) Status() types.StatusResponse {
	now := time.Now()
	return types.StatusResponse{
		Models:         g.Models(),
		QueueLen:       len(g.reqCh),
		QueueCap:       cap(g.reqCh),
		Serving:        g.Ready(),
		UptimeSeconds:  int64(now.Sub(g.start).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}
