package generator

import (
	"time"

	"github.com/rs/zerolog"

	"embedd/internal/embedding"
	"embedd/pkg/types"
)

// Defaults applied when corresponding GeneratorConfig fields are unset.
const (
	defaultQueueDepth = 100
	defaultMaxWait    = 30 * time.Second
)

// LoadFunc resolves a model config to a live embedder. Overridable so tests
// can observe or replace the collaborator.
type LoadFunc func(types.ModelConfig) (embedding.Embedder, error)

// GeneratorConfig encapsulates all tunables for Generator construction.
type GeneratorConfig struct {
	// Models to load before serving. Loading failures abort construction.
	Models []types.ModelConfig
	// QueueDepth is the fixed request queue capacity (default 100).
	QueueDepth int
	// MaxWait bounds how long an enqueue may wait for a queue slot before
	// failing with a queue-full error (default 30s).
	MaxWait time.Duration
	// Loader resolves model configs; defaults to embedding.Load.
	Loader LoadFunc
	// Logger for worker lifecycle events; defaults to a no-op logger.
	Logger *zerolog.Logger
}

func (cfg GeneratorConfig) withDefaults() GeneratorConfig {
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = defaultQueueDepth
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = defaultMaxWait
	}
	if cfg.Loader == nil {
		cfg.Loader = embedding.Load
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	return cfg
}
