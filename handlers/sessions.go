// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/deliberation/middleware"
	"github.com/danielhkuo/deliberation/models"
	"github.com/danielhkuo/deliberation/store"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(db *sql.DB) *SessionHandler {
	return &SessionHandler{store: store.New(db)}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sessionID, err := h.store.CreateSession(r.Context(), req.PolicyText, req.Statements)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("session created", "session_id", sessionID, "statements", len(req.Statements))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: sessionID,
	})
}

// GetSession handles GET /sessions/:id?voterId=
// Returns the session, live stats, and the caller's own ratings when
// voterId is given
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	session, found, err := h.store.GetSession(r.Context(), sessionID)
	if err != nil {
		writeStoreError(w, err, "session_id", sessionID)
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	stats, err := h.store.GetVoteStats(r.Context(), sessionID)
	if err != nil {
		writeStoreError(w, err, "session_id", sessionID)
		return
	}

	voterVotes := map[int]int{}
	if voterID := r.URL.Query().Get("voterId"); voterID != "" {
		voterVotes, err = h.store.GetVoterVotes(r.Context(), sessionID, voterID)
		if err != nil {
			writeStoreError(w, err, "session_id", sessionID)
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Session:    session,
		Stats:      stats,
		VoterVotes: voterVotes,
	})
}

// GetStats handles GET /sessions/:id/stats
// Lightweight polling target that skips the session body
func (h *SessionHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	_, found, err := h.store.GetSession(r.Context(), sessionID)
	if err != nil {
		writeStoreError(w, err, "session_id", sessionID)
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	stats, err := h.store.GetVoteStats(r.Context(), sessionID)
	if err != nil {
		writeStoreError(w, err, "session_id", sessionID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
