package embedding

import (
	"fmt"

	"embedd/pkg/types"
)

// Defaults applied when the corresponding ModelConfig fields are unset.
const (
	defaultMaxTokens = 256
	defaultCacheSize = 1024
	miniLMDimensions = 384
	mockDimensions   = 384
)

// Load resolves a ModelConfig to a concrete embedder. Unsupported kinds
// fail here so that startup aborts before any request is accepted.
func Load(cfg types.ModelConfig) (Embedder, error) {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	switch cfg.Kind {
	case types.ModelKindAllMiniLML12V2:
		return NewMiniLMEmbedder(cfg.Path, miniLMDimensions, maxTokens, cacheSize)
	case types.ModelKindGGUF:
		return NewGGUFEmbedder(cfg.Path, cfg.Dimensions)
	case types.ModelKindMock:
		return NewMockEmbedder(mockDimensions), nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", cfg.Kind)
	}
}
