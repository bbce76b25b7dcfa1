// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the deliberation API server.

The server hosts deliberation sessions: a policy text plus an ordered list
of opinion statements that anonymous voters rate from 1 (strongly disagree)
to 5 (strongly agree). Each voter holds at most one rating per statement;
re-rating replaces the earlier value. Statistics are computed on read.

# Starting the Server

	DATABASE_URL=deliberation.db go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - OPENAI_API_KEY (-openai-key): enables /generate and /generate-policy
  - OPENAI_BASE_URL (-openai-url): OpenAI-compatible endpoint
  - OPENAI_MODEL (-model): completion model (default: gpt-4o-mini)
  - ALLOWED_ORIGIN (-allowed-origin): CORS origin; reflects the caller if empty

# Architecture

  - handlers: HTTP request handlers (sessions, votes, generation)
  - store: session and vote persistence, statistics
  - generate: prompts and the OpenAI-compatible client
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: Request/response and domain types
  - auth: Session and voter ID generation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing
*/
package main
