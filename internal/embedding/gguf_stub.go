//go:build !llama

package embedding

import (
	"context"
	"errors"
)

// This file provides a stub for the GGUF embedder compiled when the 'llama'
// build tag is NOT set, keeping default builds and CI CGO-free. The real
// implementation lives in gguf.go.

var errGGUFNotBuilt = errors.New("gguf support not built (missing 'llama' build tag)")

// GGUFEmbedder stub; refuses to load without the 'llama' build tag.
type GGUFEmbedder struct{}

// NewGGUFEmbedder fails fast: the llama runtime is not in this build.
func NewGGUFEmbedder(_ string, _ int) (*GGUFEmbedder, error) {
	return nil, errGGUFNotBuilt
}

// EmbedBatch should never be reached because NewGGUFEmbedder errors out.
func (e *GGUFEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errGGUFNotBuilt
}

// Dimensions returns 0 in the stub.
func (e *GGUFEmbedder) Dimensions() int { return 0 }

// Close is a no-op in the stub.
func (e *GGUFEmbedder) Close() error { return nil }
