package types

// EmbedRequest is the payload for POST /embeddings.
type EmbedRequest struct {
	// Name of the model to run, as registered at startup.
	// example: all-minilm-l12-v2
	Model string `json:"model" example:"all-minilm-l12-v2"`
	// Texts to embed, one vector is returned per entry in order.
	// example: ["Hello, world!","Hello, NBA!"]
	Inputs []string `json:"inputs" example:"[\"Hello, world!\",\"Hello, NBA!\"]"`
}

// EmbedResponse is returned by POST /embeddings.
type EmbedResponse struct {
	// Model that produced the embeddings.
	// example: all-minilm-l12-v2
	Model string `json:"model" example:"all-minilm-l12-v2"`
	// Width of each embedding vector.
	// example: 384
	Dimensions int `json:"dimensions" example:"384"`
	// One embedding per input, in input order.
	Embeddings [][]float32 `json:"embeddings"`
}

// ModelInfo describes one loaded model for GET /models.
type ModelInfo struct {
	// Canonical name the model is registered under.
	// example: all-minilm-l12-v2
	Name string `json:"name" example:"all-minilm-l12-v2"`
	// Device label the model was loaded with.
	// example: cpu
	Device string `json:"device" example:"cpu"`
	// Embedding width, 0 when unknown before the first inference.
	// example: 384
	Dimensions int `json:"dimensions" example:"384"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// Loaded models.
	Models []ModelInfo `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Loaded models.
	Models []ModelInfo `json:"models"`
	// Number of requests currently waiting in the queue.
	// example: 3
	QueueLen int `json:"queue_len" example:"3"`
	// Fixed queue capacity; enqueues beyond it are rejected.
	// example: 100
	QueueCap int `json:"queue_cap" example:"100"`
	// Whether the generator is accepting requests.
	// example: true
	Serving bool `json:"serving" example:"true"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
