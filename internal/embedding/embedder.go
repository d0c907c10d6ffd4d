// Package embedding holds the numeric-model collaborators behind the
// generator: loaders that turn a ModelConfig into a live model, and the
// Embedder boundary the worker calls into. The generator treats every
// implementation as an opaque, blocking, CPU- or accelerator-bound box.
package embedding

import "context"

// Embedder converts texts into fixed-width vectors. Implementations are
// stateful and NOT safe for concurrent use; the generator worker guarantees
// serial access.
type Embedder interface {
	// EmbedBatch returns one vector per text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimensions reports the embedding width, or 0 if unknown before the
	// first inference.
	Dimensions() int
	// Close releases model resources.
	Close() error
}
