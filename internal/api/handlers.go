// Package api provides HTTP handlers for ScholarDraft endpoints.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/scholarmail/ScholarDraft/internal/models"
)

// draftResult is the payload returned for a successful draft action.
type draftResult struct {
	ActionID string `json:"action_id"`
	Draft    string `json:"draft"`
}

// intentInfo describes one enumerated intent and its form field labels.
type intentInfo struct {
	Intent models.Intent `json:"intent"`
	models.FieldLabels
}

// draftHandler runs one draft action (POST /draft).
func (s *Server) draftHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	actionID := uuid.NewString()
	slog.Debug("Server.draftHandler: processing draft request", "method", r.Method, "path", r.URL.Path, "actionID", actionID)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		slog.Warn("Server.draftHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req models.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Server.draftHandler: failed to decode JSON", "error", err, "actionID", actionID)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}

	// Validation errors are surfaced before any generation attempt.
	if err := req.Validate(); err != nil {
		slog.Warn("Server.draftHandler: validation failed", "error", err, "actionID", actionID)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	if !s.drafter.Configured() {
		slog.Warn("Server.draftHandler: generation client not configured", "actionID", actionID)
		writeJSONResponse(w, http.StatusServiceUnavailable, models.Error("OpenAI API not configured. Please set your API key as an environment variable."))
		return
	}

	result := s.drafter.Draft(r.Context(), req)
	if !result.OK() {
		slog.Error("Server.draftHandler: draft action failed", "error", result.Err, "actionID", actionID)
		writeJSONResponse(w, http.StatusBadGateway, models.Error(result.Err))
		return
	}

	slog.Info("Server.draftHandler: draft generated successfully", "actionID", actionID, "intent", req.Intent)
	writeJSONResponse(w, http.StatusOK, models.Success(draftResult{ActionID: actionID, Draft: result.Draft}))
}

// intentsHandler returns the intent enumeration with per-intent field
// labels (GET /intents). The labels drive the consuming form's dynamic
// captions; they never affect composition.
func (s *Server) intentsHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.intentsHandler: processing intents request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		slog.Warn("Server.intentsHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	intents := models.Intents()
	infos := make([]intentInfo, 0, len(intents))
	for _, intent := range intents {
		infos = append(infos, intentInfo{Intent: intent, FieldLabels: models.LabelsFor(intent)})
	}
	writeJSONResponse(w, http.StatusOK, models.Success(infos))
}

// healthHandler provides a health check endpoint for monitoring (GET /health).
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	healthData := map[string]interface{}{
		"status":                "healthy",
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
		"generation_configured": s.drafter.Configured(),
	}
	if !s.drafter.Configured() {
		healthData["status"] = "degraded"
		healthData["error"] = "Generation client not configured"
	}

	statusCode := http.StatusOK
	if healthData["status"] == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSONResponse(w, statusCode, healthData)
}
