// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the deliberation API.

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health               - Liveness check
	POST /sessions             - Create session
	GET  /sessions/{id}        - Session, stats and optional ?voterId= ratings
	GET  /sessions/{id}/stats  - Stats only
	POST /votes                - Submit or replace a rating
	POST /voters               - Issue a fresh voter ID
	POST /generate-policy      - Draft a policy text for a topic
	POST /generate             - Draft statements for a policy text

Every API route is wrapped with middleware.WithLogging. CORS is applied
around the whole mux by the caller.
*/
package router
