// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/deliberation/cliparse"
)

// SQLite pragmas applied to every connection. busy_timeout lets
// concurrent writers wait on the file lock instead of failing.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open connects to the database of the given type and verifies the
// connection with a ping.
func Open(dbType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dbType {
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", url)
	case cliparse.DatabaseSQLite:
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		conn, err = sql.Open("sqlite", url+sep+sqlitePragmas)
		if err == nil {
			// SQLite has a single writer; one connection keeps upserts
			// serialized in-process as well as on disk.
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are unix milliseconds so the same DDL works on both drivers.
const schema = `
-- Sessions (immutable once created)
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    policy_text TEXT NOT NULL,
    statements TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

-- Votes: one current rating per (session, voter, statement)
CREATE TABLE IF NOT EXISTS votes (
    session_id TEXT NOT NULL,
    statement_index INTEGER NOT NULL CHECK (statement_index >= 0),
    rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
    voter_id TEXT NOT NULL,
    voted_at BIGINT NOT NULL,
    PRIMARY KEY (session_id, voter_id, statement_index)
);

CREATE INDEX IF NOT EXISTS idx_votes_session_id ON votes(session_id);
CREATE INDEX IF NOT EXISTS idx_votes_voter_id ON votes(voter_id);
`
