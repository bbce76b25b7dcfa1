// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/deliberation/cliparse"
	"github.com/danielhkuo/deliberation/handlers"
	"github.com/danielhkuo/deliberation/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db)
	votingHandler := handlers.NewVotingHandler(db)
	generateHandler := handlers.NewGenerateHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("GET /sessions/{id}/stats", middleware.WithLogging(sessionHandler.GetStats))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("POST /voters", middleware.WithLogging(votingHandler.IssueVoterID))

	// Text generation
	mux.HandleFunc("POST /generate-policy", middleware.WithLogging(generateHandler.GeneratePolicy))
	mux.HandleFunc("POST /generate", middleware.WithLogging(generateHandler.GenerateStatements))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("deliberation API v1"))
	})

	return mux
}
