package embedding

import (
	"context"
	"math"
)

// MockEmbedder is a deterministic embedder that derives a unit vector from
// the text hash, so identical texts always embed identically. It backs the
// "mock" model kind and the package tests.
type MockEmbedder struct {
	dimensions int
}

// NewMockEmbedder returns a mock embedder of the given width.
func NewMockEmbedder(dimensions int) *MockEmbedder {
	if dimensions <= 0 {
		dimensions = mockDimensions
	}
	return &MockEmbedder{dimensions: dimensions}
}

// EmbedBatch returns one deterministic vector per text, in input order.
func (e *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = e.embed(text)
	}
	return out, nil
}

func (e *MockEmbedder) embed(text string) []float32 {
	h := hashString(text)
	vec := make([]float32, e.dimensions)
	for i := range vec {
		vec[i] = float32(math.Sin(float64(h*(i+1)))*0.1 + 0.01)
	}
	normalizeL2(vec)
	return vec
}

// Dimensions returns the embedding width.
func (e *MockEmbedder) Dimensions() int { return e.dimensions }

// Close is a no-op.
func (e *MockEmbedder) Close() error { return nil }

// normalizeL2 scales the vector in place to unit L2 norm.
func normalizeL2(x []float32) {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(1.0 / math.Sqrt(sum))
	for i := range x {
		x[i] *= norm
	}
}
