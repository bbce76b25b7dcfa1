// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/deliberation/cliparse"
	"github.com/danielhkuo/deliberation/generate"
	"github.com/danielhkuo/deliberation/middleware"
	"github.com/danielhkuo/deliberation/models"
)

type GenerateHandler struct {
	gen generate.Generator // nil when no API key is configured
}

func NewGenerateHandler(cfg cliparse.Config) *GenerateHandler {
	h := &GenerateHandler{}
	if cfg.GenerationEnabled() {
		h.gen = generate.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	}
	return h
}

// GeneratePolicy handles POST /generate-policy
func (h *GenerateHandler) GeneratePolicy(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePolicyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Topic is required")
		return
	}
	if h.gen == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Text generation is not configured")
		return
	}

	policyText, err := generate.Policy(r.Context(), h.gen, req.Topic)
	if err != nil {
		slog.Error("policy generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GeneratePolicyResponse{PolicyText: policyText})
}

// GenerateStatements handles POST /generate
func (h *GenerateHandler) GenerateStatements(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateStatementsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.PolicyText) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Policy text is required")
		return
	}
	if h.gen == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Text generation is not configured")
		return
	}

	statements, err := generate.Statements(r.Context(), h.gen, req.PolicyText)
	if err != nil {
		slog.Error("statement generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GenerateStatementsResponse{Statements: statements})
}
