// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open selects the driver by database type and pings the server:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq. SQLite uses the pure-Go
modernc.org/sqlite driver with a busy timeout, WAL journaling and a
single open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - sessions: policy text, JSON-encoded statement list, creation time
  - votes: one row per (session_id, voter_id, statement_index)

Sessions are never updated or deleted. Votes reference sessions by id
only; there is no foreign key.

# Indexes

  - votes.session_id
  - votes.voter_id
*/
package db
