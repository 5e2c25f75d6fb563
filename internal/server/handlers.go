package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/db"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/pipeline"
)

// GenerateRequest represents the request body for POST /cover-letters
type GenerateRequest struct {
	JobID          string `json:"job_id" validate:"required"`
	UserID         string `json:"user_id" validate:"required"`
	CompanyWebsite string `json:"company_website,omitempty" validate:"omitempty,url"`
}

// RunSummary represents a generation run in API responses
type RunSummary struct {
	RunID        string   `json:"run_id"`
	UserID       string   `json:"user_id"`
	JobID        string   `json:"job_id"`
	Status       string   `json:"status"`
	Letter       string   `json:"letter,omitempty"`
	OverallScore *float64 `json:"overall_score,omitempty"`
	Error        string   `json:"error,omitempty"`
	Iterations   int      `json:"iterations"`
	Degraded     bool     `json:"degraded"`
	CreatedAt    string   `json:"created_at"`
	CompletedAt  string   `json:"completed_at,omitempty"`
}

// handleGenerate runs the quality loop synchronously and returns the result
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		verr := extractValidationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	opts := pipeline.RunOptions{
		UserID:            req.UserID,
		JobID:             req.JobID,
		CompanyWebsiteURL: req.CompanyWebsite,
		APIKey:            s.apiKey,
		DatabaseURL:       s.databaseURL,
	}

	result, err := s.run(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetRun returns a generation run by ID
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Run ID is required")
		return
	}

	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	run, err := s.db.GetGenerationRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		nferr := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, runSummary(run))
}

// handleListRuns returns recent generation runs for a user, newest first
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListGenerationRuns(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]RunSummary, 0, len(runs))
	for i := range runs {
		summaries = append(summaries, runSummary(&runs[i]))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"runs":    summaries,
	})
}

// runSummary converts a stored run into its API representation
func runSummary(run *db.GenerationRun) RunSummary {
	summary := RunSummary{
		RunID:        run.ID.String(),
		UserID:       run.UserID,
		JobID:        run.JobID,
		Status:       run.Status,
		OverallScore: run.OverallScore,
		Iterations:   run.Iterations,
		Degraded:     run.Degraded,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
	}
	if run.Letter != nil {
		summary.Letter = *run.Letter
	}
	if run.ErrorMessage != nil {
		summary.Error = *run.ErrorMessage
	}
	if run.CompletedAt != nil {
		summary.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	return summary
}

// extractValidationError converts a validator error into an ErrValidation
// describing the first failing field.
func extractValidationError(err error) *ErrValidation {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
		}
	}
	return &ErrValidation{Field: "request", Message: "invalid"}
}
