// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/deliberation/auth"
	"github.com/danielhkuo/deliberation/models"
)

// CreateSession persists a new session and returns its ID.
// The insert is a single statement, so a failed call leaves nothing behind.
func (s *Store) CreateSession(ctx context.Context, policyText string, statements []string) (string, error) {
	if strings.TrimSpace(policyText) == "" {
		return "", fmt.Errorf("%w: policy text is required", ErrValidation)
	}
	if len(statements) == 0 {
		return "", fmt.Errorf("%w: at least one statement is required", ErrValidation)
	}
	for i, st := range statements {
		if strings.TrimSpace(st) == "" {
			return "", fmt.Errorf("%w: statement %d is empty", ErrValidation, i)
		}
	}

	statementsJSON, err := json.Marshal(statements)
	if err != nil {
		return "", fmt.Errorf("%w: encode statements: %w", ErrValidation, err)
	}

	sessionID, err := auth.GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, policy_text, statements, created_at)
		VALUES ($1, $2, $3, $4)
	`, sessionID, policyText, string(statementsJSON), s.now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("%w: insert session: %w", ErrStoreUnavailable, err)
	}

	return sessionID, nil
}

// GetSession looks up a session by ID. An unknown ID is reported with
// found == false and a nil error.
func (s *Store) GetSession(ctx context.Context, sessionID string) (session models.Session, found bool, err error) {
	var statementsJSON string
	var createdAt int64

	err = s.db.QueryRowContext(ctx, `
		SELECT id, policy_text, statements, created_at
		FROM sessions
		WHERE id = $1
	`, sessionID).Scan(&session.ID, &session.PolicyText, &statementsJSON, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("%w: query session: %w", ErrStoreUnavailable, err)
	}

	if err := json.Unmarshal([]byte(statementsJSON), &session.Statements); err != nil {
		return models.Session{}, false, fmt.Errorf("%w: decode statements for session %s: %w", ErrStoreUnavailable, sessionID, err)
	}
	session.CreatedAt = time.UnixMilli(createdAt).UTC()

	return session, true, nil
}
