package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/company-briefing/internal/report"
)

// reportRequest is the POST /api/report payload.
type reportRequest struct {
	Query string `json:"query" validate:"required"`
}

// reportResponse is the success envelope for POST /api/report.
type reportResponse struct {
	Error   bool                     `json:"error"`
	Report  map[string]any           `json:"report"`
	Sources []report.GroundingSource `json:"sources"`
}

// handleReport generates a company report for a name or URL query.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Missing query")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Missing query")
		return
	}

	if s.apiKey == "" {
		errorResponse(w, http.StatusInternalServerError, "Server missing GEMINI_API_KEY")
		return
	}

	result, err := s.service.Generate(r.Context(), req.Query)
	if err != nil {
		s.reportError(w, req.Query, err)
		return
	}

	jsonResponse(w, http.StatusOK, reportResponse{
		Error:   false,
		Report:  result.Report,
		Sources: result.Sources,
	})
}

// reportError maps pipeline failures to the HTTP error envelope.
func (s *Server) reportError(w http.ResponseWriter, query string, err error) {
	log.Printf("[report] generation failed for %q: %v", query, err)

	var validationErr *report.ValidationError
	if errors.As(err, &validationErr) {
		errorResponse(w, http.StatusUnprocessableEntity, validationErr.Error())
		return
	}

	if errors.Is(err, report.ErrParse) {
		errorResponse(w, http.StatusInternalServerError, "Failed to parse generator response")
		return
	}

	var upstreamErr *report.UpstreamError
	if errors.As(err, &upstreamErr) {
		message := "Failed to generate report"
		if s.devMode {
			message = upstreamErr.Error()
		}
		errorResponse(w, http.StatusInternalServerError, message)
		return
	}

	errorResponse(w, http.StatusInternalServerError, "Failed to generate report")
}
