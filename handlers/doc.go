// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the deliberation API.

# Handler Types

  - SessionHandler: session creation, retrieval and statistics
  - VotingHandler: rating submission and voter ID issuance
  - GenerateHandler: policy and statement drafting via a text generator

Session and voting handlers wrap a store.Store built from *sql.DB:

	sessionHandler := handlers.NewSessionHandler(db)

GenerateHandler is built from config and has no generator when
OPENAI_API_KEY is unset; its endpoints then answer 503.

# Voting Flow

	POST /voters   → IssueVoterID (returns voterId)
	POST /votes    → SubmitVote (insert or replace one rating)
	GET /sessions/{id}?voterId=... → GetSession (stats plus this voter's ratings)

# Error Mapping

Store errors map to status codes in one place (errors.go):

  - store.ErrNotFound → 404
  - store.ErrValidation, ErrInvalidRating, ErrInvalidIndex → 400
  - anything else → 500, logged
*/
package handlers
