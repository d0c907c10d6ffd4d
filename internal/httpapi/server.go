// Package httpapi exposes the embedding generator over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"embedd/internal/generator"
	"embedd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Generate(ctx context.Context, texts []string, model string) ([][]float32, error)
	Models() []types.ModelInfo
	Status() types.StatusResponse
	Ready() bool
}

// NewMux builds the router: /embeddings, /models, /status, /healthz,
// /readyz, /metrics, and the optional swagger mount.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		handleEmbeddings(svc, w, r)
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.ModelsResponse{Models: svc.Models()}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("closed"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleEmbeddings validates the request, runs it through the generator,
// and maps generator errors to HTTP status codes.
//
// @Summary      Generate embeddings
// @Accept       json
// @Produce      json
// @Param        request body types.EmbedRequest true "model and inputs"
// @Success      200 {object} types.EmbedResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Failure      429 {object} types.ErrorResponse
// @Failure      503 {object} types.ErrorResponse
// @Router       /embeddings [post]
func handleEmbeddings(svc Service, w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.EmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Model) == "" {
		writeJSONError(w, http.StatusBadRequest, "model is required")
		return
	}
	if len(req.Inputs) == 0 {
		writeJSONError(w, http.StatusBadRequest, "inputs must be non-empty")
		return
	}

	start := time.Now()
	logStart(r, req.Model, len(req.Inputs))

	// Tie the request to the process lifetime so queued work is abandoned
	// on shutdown, not just on client disconnect.
	ctx, cancel := joinContexts(r.Context(), shutdownCtx)
	defer cancel()

	vecs, err := svc.Generate(ctx, req.Inputs, req.Model)
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away; nothing useful to write.
			return
		}
		status := statusForError(err)
		if status == http.StatusTooManyRequests {
			IncrementBackpressure("queue_full")
		}
		writeJSONError(w, status, err.Error())
		logEnd(r, status, time.Since(start), err)
		return
	}

	dims := 0
	if len(vecs) > 0 {
		dims = len(vecs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.EmbedResponse{
		Model:      req.Model,
		Dimensions: dims,
		Embeddings: vecs,
	}); err != nil {
		logEnd(r, http.StatusInternalServerError, time.Since(start), err)
		return
	}
	logEnd(r, http.StatusOK, time.Since(start), nil)
}

// statusForError maps well-known generator errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case generator.IsModelNotFound(err):
		return http.StatusNotFound
	case generator.IsQueueFull(err):
		return http.StatusTooManyRequests
	case generator.IsInternal(err):
		// Generator has shut down; permanent for this process.
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		// Process is shutting down out from under the request.
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
