package generator

import (
	"embedd/internal/embedding"
	"embedd/pkg/types"
)

// buildRegistry loads every configured model and maps it under the
// canonical name derived from its kind. Any loading failure aborts the
// whole build and releases the models loaded so far. Duplicate canonical
// names are rejected rather than silently shadowed.
func buildRegistry(configs []types.ModelConfig, load LoadFunc) (map[string]embedding.Embedder, []types.ModelInfo, error) {
	registry := make(map[string]embedding.Embedder, len(configs))
	infos := make([]types.ModelInfo, 0, len(configs))

	closeAll := func() {
		for _, emb := range registry {
			_ = emb.Close()
		}
	}

	for _, cfg := range configs {
		name := cfg.Kind.String()
		if _, dup := registry[name]; dup {
			closeAll()
			return nil, nil, ErrModelLoading("duplicate model name: " + name)
		}
		if cfg.Device == "" {
			cfg.Device = types.DeviceCPU
		}
		emb, err := load(cfg)
		if err != nil {
			closeAll()
			return nil, nil, ErrModelLoading(err.Error())
		}
		registry[name] = emb
		infos = append(infos, types.ModelInfo{
			Name:       name,
			Device:     string(cfg.Device),
			Dimensions: emb.Dimensions(),
		})
	}
	return registry, infos, nil
}
