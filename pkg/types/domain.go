package types

// ModelKind selects which concrete embedding architecture to load.
// The kind doubles as the canonical registry name of the loaded model.
type ModelKind string

const (
	// ModelKindAllMiniLML12V2 is the sentence-transformers MiniLM model
	// served through ONNX Runtime (384 dimensions).
	ModelKindAllMiniLML12V2 ModelKind = "all-minilm-l12-v2"
	// ModelKindGGUF loads a GGUF model file through llama.cpp in
	// embedding mode.
	ModelKindGGUF ModelKind = "gguf"
	// ModelKindMock is a deterministic embedder that needs no native
	// runtime or model file. Useful for smoke tests and local runs.
	ModelKindMock ModelKind = "mock"
)

// String returns the canonical name the model is registered under.
func (k ModelKind) String() string { return string(k) }

// DeviceKind selects the compute target for a loaded model. It is a label
// passed through to the runtime; the daemon itself never schedules devices.
type DeviceKind string

const (
	DeviceCPU DeviceKind = "cpu"
	DeviceGPU DeviceKind = "gpu"
)

// ModelConfig describes one model to load at startup. Supplied once at
// construction and immutable afterwards.
type ModelConfig struct {
	// Kind of model to load.
	// example: all-minilm-l12-v2
	Kind ModelKind `json:"kind" yaml:"kind" toml:"kind" example:"all-minilm-l12-v2"`
	// Device to run the model on. Defaults to cpu.
	// example: cpu
	Device DeviceKind `json:"device,omitempty" yaml:"device" toml:"device" example:"cpu"`
	// Path to the model file on disk, for kinds that load from a file.
	// example: /home/user/models/all-MiniLM-L12-v2.onnx
	Path string `json:"path,omitempty" yaml:"path" toml:"path" example:"/home/user/models/all-MiniLM-L12-v2.onnx"`
	// MaxTokens caps the tokenized input length per text (0 = kind default).
	// example: 256
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens" toml:"max_tokens" example:"256"`
	// CacheSize is the per-model embedding LRU capacity (0 = kind default).
	// example: 1024
	CacheSize int `json:"cache_size,omitempty" yaml:"cache_size" toml:"cache_size" example:"1024"`
	// Dimensions overrides the embedding width for kinds that cannot
	// report it before the first inference (0 = determined by the model).
	// example: 384
	Dimensions int `json:"dimensions,omitempty" yaml:"dimensions" toml:"dimensions" example:"384"`
}
