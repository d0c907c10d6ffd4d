//go:build llama

package embedding

import (
	"context"
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// GGUFEmbedder produces embeddings from a GGUF model through llama.cpp in
// embedding mode. Enabled with `-tags=llama`; a stub is compiled otherwise.
type GGUFEmbedder struct {
	model      *llama.LLama
	dimensions int
}

// NewGGUFEmbedder loads the GGUF file at modelPath with embeddings enabled.
// dimensions may be 0 when unknown; it is learned from the first inference.
func NewGGUFEmbedder(modelPath string, dimensions int) (*GGUFEmbedder, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("gguf model path is empty")
	}
	m, err := llama.New(modelPath, llama.EnableEmbeddings)
	if err != nil {
		return nil, err
	}
	return &GGUFEmbedder{model: m, dimensions: dimensions}, nil
}

// EmbedBatch embeds each text in order.
func (e *GGUFEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if e.model == nil {
		return nil, errors.New("gguf model not initialized")
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.model.Embeddings(text)
		if err != nil {
			return nil, err
		}
		if e.dimensions == 0 {
			e.dimensions = len(vec)
		}
		out[i] = vec
	}
	return out, nil
}

// Dimensions returns the embedding width, 0 before the first inference
// unless configured.
func (e *GGUFEmbedder) Dimensions() int { return e.dimensions }

// Close frees the llama.cpp model.
func (e *GGUFEmbedder) Close() error {
	if e.model != nil {
		e.model.Free()
		e.model = nil
	}
	return nil
}
