package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"embedd/internal/generator"
	"embedd/pkg/types"
)

// fakeService implements Service with canned behavior per model name.
type fakeService struct {
	ready bool
}

func (s *fakeService) Generate(ctx context.Context, texts []string, model string) ([][]float32, error) {
	switch model {
	case "mock":
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = make([]float32, 384)
		}
		return out, nil
	case "busy":
		return nil, generator.ErrQueueFull(model)
	case "broken":
		return nil, generator.ErrModel("inference blew up")
	case "closed":
		return nil, generator.ErrInternal("generator closed")
	default:
		return nil, generator.ErrModelNotFound(model)
	}
}

func (s *fakeService) Models() []types.ModelInfo {
	return []types.ModelInfo{{Name: "mock", Device: "cpu", Dimensions: 384}}
}

func (s *fakeService) Status() types.StatusResponse {
	return types.StatusResponse{Models: s.Models(), QueueCap: 100, Serving: s.ready}
}

func (s *fakeService) Ready() bool { return s.ready }

func postEmbeddings(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/embeddings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEmbeddings_OK(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	rec := postEmbeddings(t, h, `{"model":"mock","inputs":["Hello, world!","Hello, NBA!","Hello, NFL!"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp types.EmbedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Embeddings) != 3 || resp.Dimensions != 384 || resp.Model != "mock" {
		t.Fatalf("unexpected response: model=%s dims=%d n=%d", resp.Model, resp.Dimensions, len(resp.Embeddings))
	}
}

func TestEmbeddings_ModelNotFound(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	rec := postEmbeddings(t, h, `{"model":"that-name","inputs":["hi"]}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != http.StatusNotFound {
		t.Fatalf("error payload code %d", resp.Code)
	}
}

func TestEmbeddings_QueueFull429(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	rec := postEmbeddings(t, h, `{"model":"busy","inputs":["hi"]}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", rec.Code)
	}
}

func TestEmbeddings_ModelError500(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	rec := postEmbeddings(t, h, `{"model":"broken","inputs":["hi"]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
}

func TestEmbeddings_Closed503(t *testing.T) {
	h := NewMux(&fakeService{ready: false})
	rec := postEmbeddings(t, h, `{"model":"closed","inputs":["hi"]}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

func TestEmbeddings_Validation(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	cases := []struct {
		name string
		body string
	}{
		{"missing model", `{"inputs":["hi"]}`},
		{"empty inputs", `{"model":"mock","inputs":[]}`},
		{"bad json", `{`},
	}
	for _, c := range cases {
		if rec := postEmbeddings(t, h, c.body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", c.name, rec.Code)
		}
	}
}

func TestEmbeddings_RequiresJSONContentType(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	req := httptest.NewRequest(http.MethodPost, "/embeddings", bytes.NewBufferString("model=mock"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status %d, want 415", rec.Code)
	}
}

func TestModelsEndpoint(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp types.ModelsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Models) != 1 || resp.Models[0].Name != "mock" {
		t.Fatalf("unexpected models: %+v", resp.Models)
	}
}

func TestHealthAndReadiness(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("/healthz status %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("/readyz status %d", rec.Code)
	}

	h = NewMux(&fakeService{ready: false})
	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("/readyz closed status %d", rec.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	h := NewMux(&fakeService{ready: true})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp types.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.QueueCap != 100 || !resp.Serving {
		t.Fatalf("unexpected status: %+v", resp)
	}
}
