package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/pipeline"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// newTestServer creates a server without a database connection for testing
func newTestServer(run runFunc) *Server {
	return &Server{
		apiKey:   "test-api-key",
		validate: validator.New(),
		run:      run,
	}
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

// TestGenerateEndpoint_InvalidJSON tests /cover-letters with invalid JSON
func TestGenerateEndpoint_InvalidJSON(t *testing.T) {
	s := newTestServer(nil)

	body := `{invalid json}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestGenerateEndpoint_MissingJobID tests /cover-letters without job_id
func TestGenerateEndpoint_MissingJobID(t *testing.T) {
	s := newTestServer(nil)

	body := `{"user_id": "user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(resp["error"], "JobID") {
		t.Errorf("expected error to name the missing field, got '%s'", resp["error"])
	}
}

// TestGenerateEndpoint_MissingUserID tests /cover-letters without user_id
func TestGenerateEndpoint_MissingUserID(t *testing.T) {
	s := newTestServer(nil)

	body := `{"job_id": "job-1"}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestGenerateEndpoint_InvalidWebsite tests /cover-letters with a malformed URL
func TestGenerateEndpoint_InvalidWebsite(t *testing.T) {
	s := newTestServer(nil)

	body := `{"job_id": "job-1", "user_id": "user-1", "company_website": "not-a-url"}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestGenerateEndpoint_Success tests a full successful generation request
func TestGenerateEndpoint_Success(t *testing.T) {
	var gotOpts pipeline.RunOptions
	s := newTestServer(func(_ context.Context, opts pipeline.RunOptions) (*types.RunResult, error) {
		gotOpts = opts
		return &types.RunResult{
			Text:       "Sehr geehrte Damen und Herren, ...",
			Iterations: 2,
			Scores:     types.QualityScores{OverallScore: 8.4},
			Validation: types.ValidationResult{IsValid: true},
		}, nil
	})

	body := `{"job_id": "job-1", "user_id": "user-1", "company_website": "https://acme.example"}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if gotOpts.JobID != "job-1" {
		t.Errorf("expected JobID 'job-1', got '%s'", gotOpts.JobID)
	}
	if gotOpts.UserID != "user-1" {
		t.Errorf("expected UserID 'user-1', got '%s'", gotOpts.UserID)
	}
	if gotOpts.CompanyWebsiteURL != "https://acme.example" {
		t.Errorf("expected website to pass through, got '%s'", gotOpts.CompanyWebsiteURL)
	}
	if gotOpts.APIKey != "test-api-key" {
		t.Errorf("expected server API key to pass through, got '%s'", gotOpts.APIKey)
	}

	var resp types.RunResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Text != "Sehr geehrte Damen und Herren, ..." {
		t.Errorf("expected letter text in response, got '%s'", resp.Text)
	}
	if resp.Iterations != 2 {
		t.Errorf("expected 2 iterations, got %d", resp.Iterations)
	}
}

// TestGenerateEndpoint_RunFailure tests that run errors map to 500
func TestGenerateEndpoint_RunFailure(t *testing.T) {
	s := newTestServer(func(_ context.Context, _ pipeline.RunOptions) (*types.RunResult, error) {
		return nil, errors.New("no candidate letters were produced")
	})

	body := `{"job_id": "job-1", "user_id": "user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/cover-letters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGenerate(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(resp["error"], "no candidate letters") {
		t.Errorf("expected underlying error in response, got '%s'", resp["error"])
	}
}

// TestGetRunEndpoint_InvalidID tests /runs/{id} with invalid UUID
func TestGetRunEndpoint_InvalidID(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetRun(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestGetRunEndpoint_MissingID tests /runs/{id} with missing ID
func TestGetRunEndpoint_MissingID(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/", nil)
	req.SetPathValue("id", "")
	w := httptest.NewRecorder()

	s.handleGetRun(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestListRunsEndpoint_MissingUserID tests /users/{id}/runs with missing ID
func TestListRunsEndpoint_MissingUserID(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/users//runs", nil)
	req.SetPathValue("id", "")
	w := httptest.NewRecorder()

	s.handleListRuns(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestListRunsEndpoint_InvalidLimit tests /users/{id}/runs with a bad limit
func TestListRunsEndpoint_InvalidLimit(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/users/user-1/runs?limit=abc", nil)
	req.SetPathValue("id", "user-1")
	w := httptest.NewRecorder()

	s.handleListRuns(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestCORSMiddleware tests CORS headers are set
func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(nil)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header Access-Control-Allow-Origin: *")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected CORS header Access-Control-Allow-Methods")
	}
}

// TestCORSMiddleware_OPTIONS tests OPTIONS preflight request
func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer(nil)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for OPTIONS, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("OPTIONS response should have empty body")
	}
}

// TestLoggingMiddleware tests that logging middleware passes through
func TestLoggingMiddleware(t *testing.T) {
	s := newTestServer(nil)

	called := false
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("logging middleware should call next handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

// TestJSONResponse tests jsonResponse helper
func TestJSONResponse(t *testing.T) {
	s := newTestServer(nil)
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusOK, map[string]string{"key": "value"})

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("expected Content-Type: application/json")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["key"] != "value" {
		t.Errorf("expected key='value', got '%s'", resp["key"])
	}
}

// TestErrorResponse tests errorResponse helper
func TestErrorResponse(t *testing.T) {
	s := newTestServer(nil)
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusBadRequest, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["error"] != "test error" {
		t.Errorf("expected error='test error', got '%s'", resp["error"])
	}
}
