// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/deliberation/auth"
	"github.com/danielhkuo/deliberation/middleware"
	"github.com/danielhkuo/deliberation/models"
	"github.com/danielhkuo/deliberation/store"
)

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(db *sql.DB) *VotingHandler {
	return &VotingHandler{store: store.New(db)}
}

// SubmitVote handles POST /votes
// Creates or replaces the voter's rating for one statement
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SessionID == "" || req.VoterID == "" || req.StatementIndex == nil || req.Rating == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId, voterId, statementIndex and rating are required")
		return
	}

	err := h.store.SubmitVote(r.Context(), req.SessionID, req.VoterID, *req.StatementIndex, *req.Rating)
	if err != nil {
		writeStoreError(w, err, "session_id", req.SessionID)
		return
	}

	slog.Info("vote recorded", "session_id", req.SessionID, "statement_index", *req.StatementIndex)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{Success: true})
}

// IssueVoterID handles POST /voters
// Hands out a fresh opaque voter ID for clients that have none yet
func (h *VotingHandler) IssueVoterID(w http.ResponseWriter, r *http.Request) {
	voterID, err := auth.GenerateVoterID()
	if err != nil {
		slog.Error("failed to generate voter ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue voter ID")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.IssueVoterResponse{VoterID: voterID})
}
