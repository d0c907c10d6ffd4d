package generator

import (
	"context"
	"time"

	"embedd/internal/embedding"
	"embedd/pkg/types"
)

// loadReport is the one-shot handshake from the worker's loading phase back
// to the constructor.
type loadReport struct {
	models []types.ModelInfo
	err    error
}

// run is the worker goroutine. It owns the registry exclusively: loading
// builds it, serving reads it, and nothing outside this goroutine ever
// touches a loaded model (serial access is a correctness requirement here,
// not a performance choice).
func (g *Generator) run(cfg GeneratorConfig, loaded chan<- loadReport) {
	defer close(g.done)

	registry, infos, err := buildRegistry(cfg.Models, cfg.Loader)
	if err != nil {
		g.log.Error().Err(err).Msg("model loading failed")
		loaded <- loadReport{err: err}
		return
	}
	g.log.Info().Int("models", len(registry)).Msg("models loaded, serving")
	loaded <- loadReport{models: infos}

	defer func() {
		for name, emb := range registry {
			if cerr := emb.Close(); cerr != nil {
				g.log.Warn().Err(cerr).Str("model", name).Msg("model close failed")
			}
		}
		g.log.Info().Msg("worker exited")
	}()

	// Serving: strict FIFO, one inference at a time. A failed request is
	// answered and the loop continues; only closing the queue ends it.
	for req := range g.reqCh {
		queueDepth.Dec()
		g.serve(registry, req)
	}
}

func (g *Generator) serve(registry map[string]embedding.Embedder, req request) {
	// Exactly one reply per request: send once, then close.
	defer close(req.reply)

	emb, ok := registry[req.model]
	if !ok {
		requestsTotal.WithLabelValues(req.model, "model_not_found").Inc()
		req.reply <- result{err: ErrModelNotFound(req.model)}
		return
	}

	start := time.Now()
	vecs, err := emb.EmbedBatch(context.Background(), req.texts)
	encodeDuration.WithLabelValues(req.model).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(req.model, "model_error").Inc()
		g.log.Error().Err(err).Str("model", req.model).Msg("inference failed")
		req.reply <- result{err: ErrModel(err.Error())}
		return
	}
	requestsTotal.WithLabelValues(req.model, "ok").Inc()
	req.reply <- result{embeddings: vecs}
}
