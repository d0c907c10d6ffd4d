//go:build !cgo

package embedding

import (
	"context"
	"errors"
)

// This file provides a no-CGO stub for the MiniLM embedder, compiled when
// CGO is disabled. The real implementation lives in minilm.go and needs the
// onnxruntime shared library.

var errMiniLMNotBuilt = errors.New("all-minilm-l12-v2 requires CGO; build with CGO_ENABLED=1 and onnxruntime installed")

// MiniLMEmbedder stub; refuses to load without CGO.
type MiniLMEmbedder struct{}

// NewMiniLMEmbedder fails fast when built without CGO.
func NewMiniLMEmbedder(_ string, _, _, _ int) (*MiniLMEmbedder, error) {
	return nil, errMiniLMNotBuilt
}

// EmbedBatch should never be reached because NewMiniLMEmbedder errors out.
func (e *MiniLMEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errMiniLMNotBuilt
}

// Dimensions returns 0 in the stub.
func (e *MiniLMEmbedder) Dimensions() int { return 0 }

// Close is a no-op in the stub.
func (e *MiniLMEmbedder) Close() error { return nil }
