package generator

// modelNotFoundError signals a request for a name absent from the registry.
type modelNotFoundError struct{ name string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.name }

// ErrModelNotFound constructs a modelNotFoundError.
func ErrModelNotFound(name string) error { return modelNotFoundError{name: name} }

// IsModelNotFound reports whether err indicates a missing model name (404).
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}

// modelError signals an inference failure on a valid, loaded model.
type modelError struct{ detail string }

func (e modelError) Error() string { return "model inference error: " + e.detail }

// ErrModel constructs a modelError carrying the underlying diagnostic text.
func ErrModel(detail string) error { return modelError{detail: detail} }

// IsModelError reports whether err indicates a failed inference call.
func IsModelError(err error) bool {
	_, ok := err.(modelError)
	return ok
}

// modelLoadingError signals that startup failed to materialize a configured
// model. Fatal to the whole generator; no request is ever servable after it.
type modelLoadingError struct{ detail string }

func (e modelLoadingError) Error() string { return "model loading error: " + e.detail }

// ErrModelLoading constructs a modelLoadingError.
func ErrModelLoading(detail string) error { return modelLoadingError{detail: detail} }

// IsModelLoading reports whether err indicates a startup loading failure.
func IsModelLoading(err error) bool {
	_, ok := err.(modelLoadingError)
	return ok
}

// queueFullError signals backpressure: the bounded queue stayed full past
// the configured wait. Maps to 429.
type queueFullError struct{ model string }

func (e queueFullError) Error() string { return "queue full: " + e.model }

// ErrQueueFull constructs a queueFullError.
func ErrQueueFull(model string) error { return queueFullError{model: model} }

// IsQueueFull reports whether err indicates backpressure (return 429).
func IsQueueFull(err error) bool {
	_, ok := err.(queueFullError)
	return ok
}

// internalError signals an unexpectedly closed channel or a closed
// generator. Callers should treat it as permanent and not retry.
type internalError struct{ detail string }

func (e internalError) Error() string { return "internal error: " + e.detail }

// ErrInternal constructs an internalError.
func ErrInternal(detail string) error { return internalError{detail: detail} }

// IsInternal reports whether err indicates the generator is unusable.
func IsInternal(err error) bool {
	_, ok := err.(internalError)
	return ok
}
