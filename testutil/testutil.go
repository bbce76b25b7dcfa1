// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/deliberation/auth"
	"github.com/danielhkuo/deliberation/cliparse"
	"github.com/danielhkuo/deliberation/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// per-test temporary directory. It is closed automatically.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "test.db",
		DatabaseType:  cliparse.DatabaseSQLite,
		OpenAIBaseURL: "http://127.0.0.1:0",
		OpenAIModel:   "test-model",
	}
}

// CreateTestSession inserts a session directly and returns its ID
func CreateTestSession(t *testing.T, db *sql.DB, statements ...string) string {
	t.Helper()

	sessionID, _ := auth.GenerateSessionID()
	statementsJSON, _ := json.Marshal(statements)

	_, err := db.Exec(`
		INSERT INTO sessions (id, policy_text, statements, created_at)
		VALUES ($1, 'Test policy', $2, $3)
	`, sessionID, string(statementsJSON), time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return sessionID
}

// InsertTestVote writes a vote row directly, bypassing validation
func InsertTestVote(t *testing.T, db *sql.DB, sessionID, voterID string, statementIndex, rating int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO votes (session_id, statement_index, rating, voter_id, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, sessionID, statementIndex, rating, voterID, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountVotes returns the number of vote rows for a session
func CountVotes(t *testing.T, db *sql.DB, sessionID string) int {
	t.Helper()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM votes WHERE session_id = $1`, sessionID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
