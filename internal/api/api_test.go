package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scholarmail/ScholarDraft/internal/drafter"
	"github.com/scholarmail/ScholarDraft/internal/models"
)

// mockGenerator implements drafter.Generator and records invocations.
type mockGenerator struct {
	draft string
	err   error
	calls int
}

func (m *mockGenerator) GenerateDraft(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	return m.draft, m.err
}

func newTestServer(gen drafter.Generator) *Server {
	return NewServer(drafter.NewService(gen))
}

func postDraft(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/draft", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	srv.draftHandler(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return resp
}

func TestDraftHandler_Success(t *testing.T) {
	gen := &mockGenerator{draft: "Subject: Inquiry\n\nDear Dr. Vance, ..."}
	srv := newTestServer(gen)

	rr := postDraft(t, srv, `{"core_message":"Inquire about the neuroplasticity paper","intent":"Inquiry"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	if resp.Status != string(models.APIStatusOK) {
		t.Errorf("expected ok status, got %q", resp.Status)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected result object, got %T", resp.Result)
	}
	if result["draft"] != gen.draft {
		t.Errorf("expected draft in result, got %v", result["draft"])
	}
	if result["action_id"] == "" || result["action_id"] == nil {
		t.Error("expected an action id in the result")
	}
	if gen.calls != 1 {
		t.Errorf("expected exactly one generation call, got %d", gen.calls)
	}
}

func TestDraftHandler_EmptyCoreMessage(t *testing.T) {
	gen := &mockGenerator{draft: "should not be produced"}
	srv := newTestServer(gen)

	rr := postDraft(t, srv, `{"core_message":"","intent":"Inquiry"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if resp.Status != string(models.APIStatusError) {
		t.Errorf("expected error status, got %q", resp.Status)
	}
	if gen.calls != 0 {
		t.Errorf("expected zero generation calls on validation error, got %d", gen.calls)
	}
}

func TestDraftHandler_InvalidIntent(t *testing.T) {
	gen := &mockGenerator{}
	srv := newTestServer(gen)

	rr := postDraft(t, srv, `{"core_message":"hello","intent":"Sales Pitch"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if gen.calls != 0 {
		t.Errorf("expected zero generation calls, got %d", gen.calls)
	}
}

func TestDraftHandler_InvalidJSON(t *testing.T) {
	srv := newTestServer(&mockGenerator{})
	rr := postDraft(t, srv, `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDraftHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(&mockGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/draft", nil)
	rr := httptest.NewRecorder()
	srv.draftHandler(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("expected Allow header %q, got %q", http.MethodPost, allow)
	}
}

func TestDraftHandler_Unconfigured(t *testing.T) {
	srv := newTestServer(nil)
	rr := postDraft(t, srv, `{"core_message":"hello","intent":"General"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if !strings.Contains(resp.Message, "not configured") {
		t.Errorf("expected configuration error message, got %q", resp.Message)
	}
}

func TestDraftHandler_GenerationFailure(t *testing.T) {
	gen := &mockGenerator{err: errors.New("upstream unavailable")}
	srv := newTestServer(gen)

	rr := postDraft(t, srv, `{"core_message":"hello","intent":"General"}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if !strings.Contains(resp.Message, "upstream unavailable") {
		t.Errorf("expected descriptive error message, got %q", resp.Message)
	}
}

func TestIntentsHandler(t *testing.T) {
	srv := newTestServer(&mockGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/intents", nil)
	rr := httptest.NewRecorder()
	srv.intentsHandler(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	items, ok := resp.Result.([]interface{})
	if !ok {
		t.Fatalf("expected result list, got %T", resp.Result)
	}
	if len(items) != len(models.Intents()) {
		t.Errorf("expected %d intents, got %d", len(models.Intents()), len(items))
	}
	first, ok := items[0].(map[string]interface{})
	if !ok {
		t.Fatalf("expected intent object, got %T", items[0])
	}
	if first["intent"] != string(models.IntentInquiry) {
		t.Errorf("expected first intent %q, got %v", models.IntentInquiry, first["intent"])
	}
	if first["other_info_label"] != "Specific topic of inquiry:" {
		t.Errorf("expected intent-specific label, got %v", first["other_info_label"])
	}
}

func TestIntentsHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(&mockGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/intents", nil)
	rr := httptest.NewRecorder()
	srv.intentsHandler(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestHealthHandler_Configured(t *testing.T) {
	srv := newTestServer(&mockGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.healthHandler(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var health map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", health["status"])
	}
	if health["generation_configured"] != true {
		t.Errorf("expected generation_configured true, got %v", health["generation_configured"])
	}
}

func TestHealthHandler_Unconfigured(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.healthHandler(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestHandlerRoutes(t *testing.T) {
	srv := newTestServer(&mockGenerator{draft: "ok"})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", resp.StatusCode)
	}
}
